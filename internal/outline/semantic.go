package outline

import (
	"context"
	"fmt"

	"github.com/bkristol/outliner/internal/embed"
)

// HeadingConcept is the fixed reference text representing heading-like
// vocabulary. Blocks whose embedding lands close to it are flagged as
// heading candidates.
const HeadingConcept = "title chapter section introduction summary references appendix"

// SimilarityThreshold is the cosine-similarity cutoff for accepting a block
// as a semantic heading candidate. Strictly-above semantics.
const SimilarityThreshold = 0.4

// ClassifySemantic flags still-unclassified blocks whose text is semantically
// heading-like. All remaining texts plus the reference concept are encoded in
// one batched call. Matching blocks become SemanticCandidate with no level;
// level resolution is deferred to the consolidation step. With a disabled
// encoder or nothing left to classify this is a no-op.
// Returns a new slice; input blocks are not mutated.
func ClassifySemantic(ctx context.Context, blocks []Block, enc embed.Encoder) ([]Block, error) {
	out := make([]Block, len(blocks))
	copy(out, blocks)

	if enc == nil || !enc.Enabled() {
		return out, nil
	}

	var idx []int
	var texts []string
	for i, b := range out {
		if b.State == Unclassified {
			idx = append(idx, i)
			texts = append(texts, b.Text)
		}
	}
	if len(idx) == 0 {
		return out, nil
	}

	vectors, err := enc.Encode(ctx, append(texts, HeadingConcept))
	if err != nil {
		return nil, fmt.Errorf("encode blocks: %w", err)
	}
	if len(vectors) != len(texts)+1 {
		return nil, fmt.Errorf("encoder returned %d vectors for %d texts", len(vectors), len(texts)+1)
	}
	concept := vectors[len(vectors)-1]

	for n, i := range idx {
		if embed.Cosine(vectors[n], concept) > SimilarityThreshold {
			out[i].State = SemanticCandidate
		}
	}
	return out, nil
}
