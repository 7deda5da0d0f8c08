package outline

import (
	"sort"

	"github.com/bkristol/outliner/internal/fragment"
)

// DefaultBodySize is used when a document has no text fragments at all.
const DefaultBodySize = 10.0

// FontHistogram counts occurrences of each rounded font size.
type FontHistogram map[int]int

// Profile holds the document-wide style baseline.
type Profile struct {
	BodySize float64 // The dominant (modal) font size
	Sizes    []int   // All distinct rounded sizes, ascending
}

// ProfileStyles builds a font-size histogram over the whole document and
// derives the body size as its mode. Ties between equally frequent sizes
// resolve to the smaller size so repeated runs are reproducible.
func ProfileStyles(doc *fragment.Document) Profile {
	hist := make(FontHistogram)
	for _, p := range doc.Pages {
		for _, f := range p.Fragments {
			hist[f.Size]++
		}
	}
	if len(hist) == 0 {
		return Profile{BodySize: DefaultBodySize}
	}

	sizes := make([]int, 0, len(hist))
	for size := range hist {
		sizes = append(sizes, size)
	}
	sort.Ints(sizes)

	body := sizes[0]
	for _, size := range sizes[1:] {
		if hist[size] > hist[body] {
			body = size
		}
	}

	return Profile{BodySize: float64(body), Sizes: sizes}
}
