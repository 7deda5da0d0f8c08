package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bkristol/outliner/internal/artifact"
	"github.com/bkristol/outliner/internal/outline"
	"github.com/bkristol/outliner/internal/parser"
)

// Worker processes a single document job: parse, classify, consolidate,
// persist. Failures stay within the job; the batch keeps moving.
type Worker struct {
	pipe   *outline.Pipeline
	writer *artifact.Writer
	index  *artifact.IndexClient // nil when no index is configured
	log    *slog.Logger
}

func NewWorker(pipe *outline.Pipeline, writer *artifact.Writer, index *artifact.IndexClient, log *slog.Logger) *Worker {
	return &Worker{
		pipe:   pipe,
		writer: writer,
		index:  index,
		log:    log,
	}
}

// Process runs the full extraction pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)

	// Phase 1: Parse.
	job.SetStatus(StatusParsing, "parsing")
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	doc, err := p.Parse(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	// Phase 2+3: Classify and consolidate. The pipeline runs all five
	// stages; an encode failure inside degrades to heuristics-only.
	job.SetStatus(StatusClassifying, "classifying")
	result := w.pipe.Extract(ctx, doc)
	job.SetStatus(StatusConsolidating, "consolidating")
	job.SetResult(result)
	log.Info("outline extracted", "title", result.Title, "headings", len(result.Outline))

	// Phase 4: Persist the artifact and push to the index if configured.
	job.SetStatus(StatusWriting, "writing")
	hadErrors := false

	path, err := w.writer.Write(doc.Name, result)
	if err != nil {
		log.Error("artifact write failed", "error", err)
		job.AddError(fmt.Sprintf("write: %s", err))
		hadErrors = true
	} else {
		log.Info("artifact written", "path", path)
	}

	if w.index != nil {
		if err := w.pushOutline(ctx, job, result, log); err != nil {
			log.Error("index push failed", "error", err)
			job.AddError(fmt.Sprintf("index: %s", err))
			hadErrors = true
		}
	}

	if hadErrors {
		job.SetStatus(StatusPartial, "done")
	} else {
		job.SetStatus(StatusCompleted, "done")
	}
}

// pushOutline sends the outline downstream, retrying transient failures.
func (w *Worker) pushOutline(ctx context.Context, job *Job, result outline.Result, log *slog.Logger) error {
	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.index.PutOutline(ctx, job.DocID, result)
		if lastErr == nil || !IsRetryable(lastErr) {
			return lastErr
		}
		log.Warn("retryable index error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return lastErr
}
