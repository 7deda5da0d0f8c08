package outline

import (
	"context"
	"log/slog"

	"github.com/bkristol/outliner/internal/embed"
	"github.com/bkristol/outliner/internal/fragment"
)

// Pipeline runs the full classification-and-consolidation sequence for one
// document: style profiling, block extraction, the heuristic pass, the
// semantic pass, and consolidation. Stages run strictly in order and each
// returns a new block collection; nothing is mutated in place.
type Pipeline struct {
	enc embed.Encoder
	log *slog.Logger
}

// NewPipeline creates a pipeline. The encoder may be embed.Disabled{}, in
// which case the semantic pass is skipped and the heuristic results stand
// alone. A shared encoder is safe across concurrent pipelines: it is used
// in an encode-only capacity.
func NewPipeline(enc embed.Encoder, log *slog.Logger) *Pipeline {
	return &Pipeline{enc: enc, log: log}
}

// Extract produces the title and outline for a document. An encode failure
// in the semantic pass degrades to the heuristic-only result rather than
// failing the document.
func (p *Pipeline) Extract(ctx context.Context, doc *fragment.Document) Result {
	profile := ProfileStyles(doc)

	blocks := ExtractBlocks(doc, profile.BodySize)
	blocks = ClassifyHeuristic(blocks, profile.BodySize)

	classified, err := ClassifySemantic(ctx, blocks, p.enc)
	if err != nil {
		p.log.Warn("semantic pass failed, using heuristic results only",
			"doc", doc.Name, "error", err)
		classified = blocks
	}

	return Consolidate(classified, profile.Sizes)
}
