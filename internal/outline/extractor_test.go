package outline

import (
	"testing"

	"github.com/bkristol/outliner/internal/fragment"
)

func singlePageDoc(frags ...fragment.Fragment) *fragment.Document {
	for i := range frags {
		frags[i].Page = 1
		if frags[i].PageHeight == 0 {
			frags[i].PageHeight = 800
		}
	}
	return &fragment.Document{
		Name:  "doc",
		Pages: []fragment.Page{{Number: 1, Height: 800, Fragments: frags}},
	}
}

func TestExtractBlocks_DropsMarginBandFragments(t *testing.T) {
	// Header-band and footer-band text is never a candidate, no matter how
	// large or bold.
	doc := singlePageDoc(
		fragment.Fragment{Text: "Corporate Header", Size: 20, Font: "Helvetica-Bold", Y: 10},
		fragment.Fragment{Text: "Footer note", Size: 20, Font: "Helvetica-Bold", Y: 780},
		fragment.Fragment{Text: "Body content", Size: 10, Font: "Helvetica", Y: 400},
	)
	blocks := ExtractBlocks(doc, 10.0)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Body content" {
		t.Errorf("expected body content to survive, got %q", blocks[0].Text)
	}
}

func TestExtractBlocks_DropsPageNumbers(t *testing.T) {
	// A bare page number at body size is excluded; text that merely
	// contains digits survives.
	doc := singlePageDoc(
		fragment.Fragment{Text: "  12  ", Size: 10, Font: "Helvetica", Y: 400},
		fragment.Fragment{Text: "Chapter 12", Size: 10, Font: "Helvetica", Y: 420},
	)
	blocks := ExtractBlocks(doc, 10.0)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Text != "Chapter 12" {
		t.Errorf("expected %q, got %q", "Chapter 12", blocks[0].Text)
	}
}

func TestExtractBlocks_DropsUndersizedText(t *testing.T) {
	doc := singlePageDoc(
		fragment.Fragment{Text: "fine print", Size: 8, Font: "Helvetica", Y: 400},
		fragment.Fragment{Text: "body", Size: 10, Font: "Helvetica", Y: 420},
		fragment.Fragment{Text: "heading", Size: 14, Font: "Helvetica", Y: 440},
	)
	blocks := ExtractBlocks(doc, 10.0)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
}

func TestExtractBlocks_BoldFromFontName(t *testing.T) {
	doc := singlePageDoc(
		fragment.Fragment{Text: "strong", Size: 10, Font: "Arial-BoldMT", Y: 400},
		fragment.Fragment{Text: "regular", Size: 10, Font: "Arial", Y: 420},
	)
	blocks := ExtractBlocks(doc, 10.0)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if !blocks[0].Bold {
		t.Error("expected Arial-BoldMT to be detected as bold")
	}
	if blocks[1].Bold {
		t.Error("expected Arial to be non-bold")
	}
}

func TestExtractBlocks_AllStartUnclassified(t *testing.T) {
	doc := singlePageDoc(
		fragment.Fragment{Text: "one", Size: 10, Font: "F", Y: 100},
		fragment.Fragment{Text: "two", Size: 12, Font: "F", Y: 200},
	)
	for _, b := range ExtractBlocks(doc, 10.0) {
		if b.State != Unclassified {
			t.Errorf("block %q: expected Unclassified, got %v", b.Text, b.State)
		}
	}
}

func TestExtractBlocks_PreservesEncounterOrder(t *testing.T) {
	// Fragments arrive out of vertical order; extraction must not sort.
	doc := singlePageDoc(
		fragment.Fragment{Text: "second on page", Size: 10, Font: "F", Y: 500},
		fragment.Fragment{Text: "first on page", Size: 10, Font: "F", Y: 100},
	)
	blocks := ExtractBlocks(doc, 10.0)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "second on page" {
		t.Errorf("expected encounter order preserved, got %q first", blocks[0].Text)
	}
}
