package outline

import (
	"context"
	"errors"
	"testing"

	"github.com/bkristol/outliner/internal/embed"
)

// stubEncoder returns a fixed vector per input text, keyed by the text
// itself, plus a fixed concept vector for the trailing reference input.
type stubEncoder struct {
	vectors map[string][]float64
	concept []float64
	err     error
	calls   int
}

func (s *stubEncoder) Enabled() bool { return true }

func (s *stubEncoder) Encode(_ context.Context, texts []string) ([][]float64, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float64, len(texts))
	for i, txt := range texts {
		if txt == HeadingConcept {
			out[i] = s.concept
			continue
		}
		v, ok := s.vectors[txt]
		if !ok {
			v = []float64{0, 1}
		}
		out[i] = v
	}
	return out, nil
}

func TestClassifySemantic_FlagsAboveThreshold(t *testing.T) {
	enc := &stubEncoder{
		concept: []float64{1, 0},
		vectors: map[string][]float64{
			"Executive Summary": {1, 0}, // cosine 1.0
			"lorem ipsum body":  {0, 1}, // cosine 0.0
			"Related Work":      {1, 3}, // cosine ~0.32, below threshold
		},
	}
	blocks := []Block{
		{Text: "Executive Summary", Size: 14, Page: 1, Y: 100},
		{Text: "lorem ipsum body", Size: 12, Page: 1, Y: 200},
		{Text: "Related Work", Size: 12, Page: 1, Y: 300},
	}
	out, err := ClassifySemantic(context.Background(), blocks, enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].State != SemanticCandidate {
		t.Errorf("expected high-similarity block flagged, got %v", out[0].State)
	}
	if out[1].State != Unclassified {
		t.Errorf("expected dissimilar block untouched, got %v", out[1].State)
	}
	if out[2].State != Unclassified {
		t.Errorf("similarity below threshold must not pass, got %v", out[2].State)
	}
}

func TestClassifySemantic_OnlyTouchesUnclassified(t *testing.T) {
	enc := &stubEncoder{
		concept: []float64{1, 0},
		vectors: map[string][]float64{"anything": {1, 0}},
	}
	blocks := []Block{
		{Text: "1. Heading", Size: 14, Page: 1, Y: 100, State: HeuristicLevel, Level: 1},
		{Text: "anything", Size: 12, Page: 1, Y: 200},
	}
	out, err := ClassifySemantic(context.Background(), blocks, enc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].State != HeuristicLevel || out[0].Level != 1 {
		t.Error("heuristic classification must be preserved")
	}
	if out[1].State != SemanticCandidate {
		t.Errorf("expected unclassified block flagged, got %v", out[1].State)
	}
}

func TestClassifySemantic_DisabledEncoderIsNoop(t *testing.T) {
	blocks := []Block{{Text: "Summary", Size: 14, Page: 1, Y: 100}}
	out, err := ClassifySemantic(context.Background(), blocks, embed.Disabled{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].State != Unclassified {
		t.Errorf("expected no-op with disabled encoder, got %v", out[0].State)
	}
}

func TestClassifySemantic_NilEncoderIsNoop(t *testing.T) {
	blocks := []Block{{Text: "Summary", Size: 14, Page: 1, Y: 100}}
	out, err := ClassifySemantic(context.Background(), blocks, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0].State != Unclassified {
		t.Errorf("expected no-op with nil encoder, got %v", out[0].State)
	}
}

func TestClassifySemantic_NothingLeftSkipsEncode(t *testing.T) {
	enc := &stubEncoder{concept: []float64{1, 0}}
	blocks := []Block{
		{Text: "1. Heading", Size: 14, Page: 1, Y: 100, State: HeuristicLevel, Level: 1},
	}
	if _, err := ClassifySemantic(context.Background(), blocks, enc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.calls != 0 {
		t.Errorf("expected no encode call, got %d", enc.calls)
	}
}

func TestClassifySemantic_EncodeErrorPropagates(t *testing.T) {
	enc := &stubEncoder{err: errors.New("rate limited")}
	blocks := []Block{{Text: "Summary", Size: 14, Page: 1, Y: 100}}
	if _, err := ClassifySemantic(context.Background(), blocks, enc); err == nil {
		t.Fatal("expected error from failing encoder")
	}
	if blocks[0].State != Unclassified {
		t.Error("input slice was mutated")
	}
}

func TestClassifySemantic_BatchesIntoOneCall(t *testing.T) {
	enc := &stubEncoder{concept: []float64{1, 0}}
	blocks := []Block{
		{Text: "a", Size: 12, Page: 1, Y: 100},
		{Text: "b", Size: 12, Page: 1, Y: 200},
		{Text: "c", Size: 12, Page: 1, Y: 300},
	}
	if _, err := ClassifySemantic(context.Background(), blocks, enc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enc.calls != 1 {
		t.Errorf("expected exactly 1 encode call, got %d", enc.calls)
	}
}
