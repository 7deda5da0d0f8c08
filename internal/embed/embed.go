package embed

import (
	"context"
	"math"
)

// Encoder turns a batch of texts into fixed-dimension vectors. The pipeline
// is agnostic to dimensionality and model identity; it must also work with
// no encoder at all, which is what Disabled provides.
type Encoder interface {
	// Encode returns one vector per input text, in input order.
	Encode(ctx context.Context, texts []string) ([][]float64, error)
	// Enabled reports whether this encoder actually produces vectors.
	Enabled() bool
}

// Disabled is the explicit no-op encoder. Selecting it at startup makes
// heuristics-only operation a first-class configuration instead of an
// exception-driven fallback.
type Disabled struct{}

func (Disabled) Encode(ctx context.Context, texts []string) ([][]float64, error) {
	return nil, nil
}

func (Disabled) Enabled() bool { return false }

// Cosine computes the cosine similarity of two vectors. Mismatched lengths
// or zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
