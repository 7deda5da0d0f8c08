package outline

import (
	"fmt"
	"sort"
)

// UnknownTitle is the fallback title when no headings are found.
const UnknownTitle = "Unknown Document"

// Consolidate merges both classification passes into the final result.
// Heuristic levels are authoritative and kept verbatim; semantic candidates
// are leveled by font size through a map built from the 3 largest sizes
// observed among confirmed headings. Semantic candidates whose size falls
// outside that map are dropped. The title is chosen by block identity and
// excluded from the outline before it is built.
func Consolidate(blocks []Block, docSizes []int) Result {
	var headings []Block
	for _, b := range blocks {
		if b.State == HeuristicLevel || b.State == SemanticCandidate {
			headings = append(headings, b)
		}
	}
	if len(headings) == 0 {
		return Result{Title: UnknownTitle, Outline: []Entry{}}
	}

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].Y < headings[j].Y
	})

	levelMap := buildLevelMap(headings, docSizes)

	// Resolve each heading's final level. leveled[i] is "" for semantic
	// candidates that cannot be mapped (unlevelable, silently dropped).
	leveled := make([]string, len(headings))
	for i, h := range headings {
		if h.State == HeuristicLevel {
			leveled[i] = fmt.Sprintf("H%d", h.Level)
		} else {
			leveled[i] = levelMap[h.Size]
		}
	}

	// Title: first H1 in reading order, else the first heading overall.
	titleIdx := -1
	for i, lvl := range leveled {
		if lvl == "H1" {
			titleIdx = i
			break
		}
	}
	if titleIdx == -1 {
		titleIdx = 0
	}

	outline := []Entry{}
	for i, h := range headings {
		if i == titleIdx || leveled[i] == "" {
			continue
		}
		outline = append(outline, Entry{Level: leveled[i], Text: h.Text, Page: h.Page})
	}

	return Result{Title: headings[titleIdx].Text, Outline: outline}
}

// buildLevelMap intersects the document's distinct sizes with the sizes
// present among headings, ranks them descending, and maps the top 3 to
// H1/H2/H3.
func buildLevelMap(headings []Block, docSizes []int) map[int]string {
	present := make(map[int]bool, len(headings))
	for _, h := range headings {
		present[h.Size] = true
	}

	var sizes []int
	for _, s := range docSizes {
		if present[s] {
			sizes = append(sizes, s)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	levelMap := make(map[int]string, 3)
	for i, s := range sizes {
		if i == 3 {
			break
		}
		levelMap[s] = fmt.Sprintf("H%d", i+1)
	}
	return levelMap
}
