package parser

import (
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/bkristol/outliner/internal/fragment"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser reads text runs with their font metrics from PDF content
// streams. This is the only format that supplies real font sizes; the
// structured formats synthesize theirs.
type PDFParser struct{}

// defaultPageHeight is US Letter in points, used when a page carries no
// resolvable MediaBox.
const defaultPageHeight = 792.0

func (p *PDFParser) Parse(r io.Reader, filename string) (doc *fragment.Document, err error) {
	// ledongthuc/pdf panics on malformed content streams; convert that to a
	// parse error so one bad document stays a failed job, not a dead process.
	defer func() {
		if rec := recover(); rec != nil {
			doc = nil
			err = fmt.Errorf("parse pdf: %v", rec)
		}
	}()

	// ledongthuc/pdf requires a ReadSeeker+size, so we write to a temp file.
	tmp, err := os.CreateTemp("", "outliner-pdf-*.pdf")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	f, reader, err := pdflib.Open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc = &fragment.Document{Name: stem(filename)}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		height := pageHeight(page)
		doc.Pages = append(doc.Pages, fragment.Page{
			Number:    i,
			Height:    height,
			Fragments: collectFragments(page, i, height),
		})
	}
	return doc, nil
}

// collectFragments groups a page's raw text runs into line-level fragments
// sharing font and size, ordered top to bottom.
func collectFragments(page pdflib.Page, pageNum int, height float64) []fragment.Fragment {
	content := page.Content()
	texts := make([]pdflib.Text, len(content.Text))
	copy(texts, content.Text)

	// PDF origin is bottom-left; sort into reading order (top first).
	sort.SliceStable(texts, func(i, j int) bool {
		if texts[i].Y != texts[j].Y {
			return texts[i].Y > texts[j].Y
		}
		return texts[i].X < texts[j].X
	})

	var frags []fragment.Fragment
	var cur *fragment.Fragment
	var curY, lastEnd, lastSize float64

	flush := func() {
		if cur != nil && cur.Text != "" {
			frags = append(frags, *cur)
		}
		cur = nil
	}

	for _, t := range texts {
		if t.S == "" {
			continue
		}
		size := int(math.Round(t.FontSize))
		sameRun := cur != nil &&
			math.Abs(t.Y-curY) < 0.5 &&
			cur.Font == t.Font &&
			cur.Size == size

		if !sameRun {
			flush()
			cur = &fragment.Fragment{
				Size:       size,
				Font:       t.Font,
				X:          t.X,
				Y:          height - t.Y,
				Page:       pageNum,
				PageHeight: height,
			}
			curY = t.Y
		} else if t.X-lastEnd > lastSize*0.3 {
			// Word gap between adjacent runs on the same line.
			cur.Text += " "
		}
		cur.Text += t.S
		lastEnd = t.X + t.W
		lastSize = t.FontSize
	}
	flush()
	return frags
}

// pageHeight resolves the page's MediaBox height, following Parent links for
// inherited boxes.
func pageHeight(page pdflib.Page) float64 {
	v := page.V
	for i := 0; i < 16 && !v.IsNull(); i++ {
		box := v.Key("MediaBox")
		if !box.IsNull() && box.Len() == 4 {
			h := box.Index(3).Float64() - box.Index(1).Float64()
			if h > 0 {
				return h
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}
