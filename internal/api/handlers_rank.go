package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/bkristol/outliner/internal/parser"
	"github.com/bkristol/outliner/internal/rank"
)

// handleRank runs the section-ranking pipeline synchronously over the
// uploaded documents. A file that fails to parse is reported and skipped;
// the remaining files are still ranked.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	persona := r.FormValue("persona")
	task := r.FormValue("task")
	if persona == "" || task == "" {
		jsonError(w, "persona and task are required", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var sections []rank.Section
	var documents []string
	var skipped []map[string]string

	for _, fh := range files {
		filename := sanitizeFilename(fh.Filename)
		secs, err := s.collectSections(fh, filename)
		if err != nil {
			s.log.Warn("rank: skipping file", "filename", filename, "error", err)
			skipped = append(skipped, map[string]string{
				"filename": filename,
				"error":    err.Error(),
			})
			continue
		}
		sections = append(sections, secs...)
		documents = append(documents, filename)
	}

	result, err := s.ranker.Rank(r.Context(), sections, documents, persona, task)
	if err != nil {
		jsonError(w, "ranking failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"result":  result,
		"skipped": skipped,
	})
}

func (s *Server) collectSections(fh *multipart.FileHeader, filename string) ([]rank.Section, error) {
	if !parser.IsSupportedExtension(filename) {
		return nil, fmt.Errorf("unsupported file type")
	}
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes)
	}

	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	pageTexts := rank.PageTexts(doc)
	sections := rank.IdentifySections(filename, pageTexts)
	return rank.EnrichSections(pageTexts, sections), nil
}
