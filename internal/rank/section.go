package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bkristol/outliner/internal/fragment"
)

// Section is a heading-like line detected in a document, enriched with a
// context window from its page.
type Section struct {
	Document    string
	Title       string
	Page        int
	RefinedText string
}

// Context window sizing when expanding a heading into refined text.
const (
	contextLines     = 15
	contextFallchars = 1000
)

// PageTexts flattens a parsed document into one text blob per page,
// fragments joined top to bottom.
func PageTexts(doc *fragment.Document) []string {
	texts := make([]string, 0, len(doc.Pages))
	for _, page := range doc.Pages {
		frags := make([]fragment.Fragment, len(page.Fragments))
		copy(frags, page.Fragments)
		sort.SliceStable(frags, func(i, j int) bool {
			if frags[i].Y != frags[j].Y {
				return frags[i].Y < frags[j].Y
			}
			return frags[i].X < frags[j].X
		})

		var sb strings.Builder
		for _, f := range frags {
			t := strings.TrimSpace(f.Text)
			if t == "" {
				continue
			}
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(t)
		}
		texts = append(texts, sb.String())
	}
	return texts
}

// IdentifySections scans per-page text for heading-like lines.
func IdentifySections(docName string, pageTexts []string) []Section {
	var sections []Section
	for pageIdx, content := range pageTexts {
		for _, line := range strings.Split(content, "\n") {
			if IsLikelyHeading(line) {
				sections = append(sections, Section{
					Document: docName,
					Title:    strings.TrimSpace(line),
					Page:     pageIdx + 1,
				})
			}
		}
	}
	return sections
}

// EnrichSections expands each section into a context window: the run of
// lines starting at the heading, else the head of the page text.
func EnrichSections(pageTexts []string, sections []Section) []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		pageText := ""
		if s.Page-1 >= 0 && s.Page-1 < len(pageTexts) {
			pageText = pageTexts[s.Page-1]
		}

		lines := strings.Split(pageText, "\n")
		window := ""
		for j, line := range lines {
			if strings.Contains(line, s.Title) {
				end := j + contextLines
				if end > len(lines) {
					end = len(lines)
				}
				window = strings.Join(lines[j:end], "\n")
				break
			}
		}
		if window == "" {
			window = pageText
			if len(window) > contextFallchars {
				cut := contextFallchars
				// Back up to a rune boundary so the window stays valid UTF-8.
				for cut > 0 && !utf8.RuneStart(window[cut]) {
					cut--
				}
				window = window[:cut]
			}
		}

		out[i] = s
		out[i].RefinedText = window
	}
	return out
}
