package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bkristol/outliner/internal/artifact"
	"github.com/bkristol/outliner/internal/config"
	"github.com/bkristol/outliner/internal/embed"
	"github.com/bkristol/outliner/internal/outline"
	"github.com/bkristol/outliner/internal/parser"
)

// Batch mode: outline every supported document in the input directory and
// write one JSON artifact per document to the output directory. One bad
// document never stops the batch.
func main() {
	inputDir := flag.String("in", "input", "input directory")
	outputDir := flag.String("out", "output", "output directory")
	workers := flag.Int("workers", 4, "concurrent documents")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	stats := embed.NewStats(time.Hour)
	var enc embed.Encoder = embed.Disabled{}
	if cfg.OpenAIAPIKey != "" {
		enc = embed.NewOpenAIEncoder(embed.OpenAIConfig{
			APIKey: cfg.OpenAIAPIKey,
			Model:  cfg.OpenAIModel,
		}, stats)
		log.Info("embeddings enabled", "model", cfg.OpenAIModel)
	} else {
		log.Info("no OPENAI_API_KEY set, running heuristics-only")
	}

	writer, err := artifact.NewWriter(*outputDir)
	if err != nil {
		log.Error("output dir", "error", err)
		os.Exit(1)
	}

	files, err := discover(*inputDir)
	if err != nil {
		log.Error("scan input dir", "error", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		log.Info("no supported files found", "dir", *inputDir)
		return
	}

	pipe := outline.NewPipeline(enc, log)
	ctx := context.Background()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		failed int
	)
	queue := make(chan string)

	for range max(*workers, 1) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				if err := processFile(ctx, pipe, writer, path); err != nil {
					log.Error("document failed", "path", path, "error", err)
					mu.Lock()
					failed++
					mu.Unlock()
					continue
				}
				log.Info("document processed", "path", path)
			}
		}()
	}

	for _, f := range files {
		queue <- f
	}
	close(queue)
	wg.Wait()

	log.Info("batch complete", "total", len(files), "failed", failed)
	if failed == len(files) {
		os.Exit(1)
	}
}

func processFile(ctx context.Context, pipe *outline.Pipeline, writer *artifact.Writer, path string) error {
	p, err := parser.ForFile(path)
	if err != nil {
		return err
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	doc, err := p.Parse(f, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	result := pipe.Extract(ctx, doc)
	if _, err := writer.Write(doc.Name, result); err != nil {
		return err
	}
	return nil
}

func discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
