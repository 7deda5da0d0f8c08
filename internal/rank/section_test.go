package rank

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/bkristol/outliner/internal/fragment"
)

func TestPageTexts_OrdersAndJoins(t *testing.T) {
	doc := &fragment.Document{
		Name: "doc",
		Pages: []fragment.Page{
			{Number: 1, Height: 800, Fragments: []fragment.Fragment{
				{Text: "second line", Y: 200, X: 50, Page: 1, PageHeight: 800},
				{Text: "first line", Y: 100, X: 50, Page: 1, PageHeight: 800},
				{Text: "   ", Y: 150, X: 50, Page: 1, PageHeight: 800},
			}},
			{Number: 2, Height: 800, Fragments: []fragment.Fragment{
				{Text: "right", Y: 100, X: 300, Page: 2, PageHeight: 800},
				{Text: "left", Y: 100, X: 50, Page: 2, PageHeight: 800},
			}},
		},
	}
	texts := PageTexts(doc)
	if len(texts) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(texts))
	}
	if texts[0] != "first line\nsecond line" {
		t.Errorf("page 1: got %q", texts[0])
	}
	if texts[1] != "left\nright" {
		t.Errorf("page 2: expected same-row fragments ordered by X, got %q", texts[1])
	}
}

func TestIdentifySections_FindsHeadingLines(t *testing.T) {
	pageTexts := []string{
		"Beach Packing Checklist\nbring sunscreen and a hat\nand water",
		"just prose here\nnothing heading like at all",
		"LOCAL FOOD GUIDE\nwhere to eat",
	}
	sections := IdentifySections("guide.pdf", pageTexts)
	if len(sections) != 2 {
		t.Fatalf("expected 2 sections, got %+v", sections)
	}
	if sections[0].Title != "Beach Packing Checklist" || sections[0].Page != 1 {
		t.Errorf("unexpected first section: %+v", sections[0])
	}
	if sections[1].Title != "LOCAL FOOD GUIDE" || sections[1].Page != 3 {
		t.Errorf("unexpected second section: %+v", sections[1])
	}
	if sections[0].Document != "guide.pdf" {
		t.Errorf("expected document name carried, got %q", sections[0].Document)
	}
}

func TestEnrichSections_WindowFromHeading(t *testing.T) {
	var lines []string
	lines = append(lines, "intro line")
	lines = append(lines, "Packing Tips Here")
	for i := 0; i < 20; i++ {
		lines = append(lines, "detail")
	}
	pageTexts := []string{strings.Join(lines, "\n")}

	sections := EnrichSections(pageTexts, []Section{
		{Document: "d", Title: "Packing Tips Here", Page: 1},
	})
	got := strings.Split(sections[0].RefinedText, "\n")
	if len(got) != contextLines {
		t.Fatalf("expected %d-line window, got %d", contextLines, len(got))
	}
	if got[0] != "Packing Tips Here" {
		t.Errorf("window must start at the heading, got %q", got[0])
	}
}

func TestEnrichSections_FallbackToPageHead(t *testing.T) {
	long := strings.Repeat("x", 2500)
	sections := EnrichSections([]string{long}, []Section{
		{Document: "d", Title: "Missing Heading Title", Page: 1},
	})
	if len(sections[0].RefinedText) != contextFallchars {
		t.Errorf("expected %d-char fallback, got %d", contextFallchars, len(sections[0].RefinedText))
	}
}

func TestEnrichSections_FallbackCutsAtRuneBoundary(t *testing.T) {
	// 400 three-byte runes = 1200 bytes; byte 1000 lands mid-rune, so the
	// fallback window must back up rather than emit a torn sequence.
	long := strings.Repeat("日", 400)
	sections := EnrichSections([]string{long}, []Section{
		{Document: "d", Title: "Missing Heading Title", Page: 1},
	})
	got := sections[0].RefinedText
	if len(got) > contextFallchars {
		t.Errorf("fallback window too long: %d bytes", len(got))
	}
	if !utf8.ValidString(got) {
		t.Error("fallback window contains invalid UTF-8")
	}
	if len(got) != 999 {
		t.Errorf("expected cut at the preceding rune boundary (999 bytes), got %d", len(got))
	}
}

func TestEnrichSections_ShortWindowAtPageEnd(t *testing.T) {
	pageTexts := []string{"a\nb\nFinal Section Heading\nlast"}
	sections := EnrichSections(pageTexts, []Section{
		{Document: "d", Title: "Final Section Heading", Page: 1},
	})
	if sections[0].RefinedText != "Final Section Heading\nlast" {
		t.Errorf("got %q", sections[0].RefinedText)
	}
}

func TestEnrichSections_OutOfRangePage(t *testing.T) {
	sections := EnrichSections([]string{"only page"}, []Section{
		{Document: "d", Title: "Anything", Page: 7},
	})
	if sections[0].RefinedText != "" {
		t.Errorf("expected empty refined text for out-of-range page, got %q", sections[0].RefinedText)
	}
}
