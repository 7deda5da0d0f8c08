package outline

import (
	"strings"
	"unicode"

	"github.com/bkristol/outliner/internal/fragment"
)

// MarginBand is the header/footer exclusion zone at the top and bottom of
// each page, in page units.
const MarginBand = 50.0

// ExtractBlocks filters raw fragments into classification candidates.
// A fragment is dropped when it sits inside the margin band, its size is
// below the body size, or its trimmed text is empty or purely numeric
// (page numbers). Survivors keep page-major encounter order.
func ExtractBlocks(doc *fragment.Document, bodySize float64) []Block {
	var blocks []Block
	for _, page := range doc.Pages {
		for _, f := range page.Fragments {
			if f.Y < MarginBand || f.Y > f.PageHeight-MarginBand {
				continue
			}
			if float64(f.Size) < bodySize {
				continue
			}
			text := strings.TrimSpace(f.Text)
			if text == "" || isNumeric(text) {
				continue
			}
			blocks = append(blocks, Block{
				Text:  text,
				Size:  f.Size,
				Bold:  isBoldFont(f.Font),
				Page:  f.Page,
				Y:     f.Y,
				State: Unclassified,
			})
		}
	}
	return blocks
}

func isBoldFont(font string) bool {
	return strings.Contains(strings.ToLower(font), "bold")
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
