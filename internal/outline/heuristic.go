package outline

import (
	"regexp"
	"strings"
)

// Numeric, dot-separated prefixes such as "2. " or "3.1.4 ". A trailing dot
// before the whitespace is allowed ("1. Overview") and does not add depth.
var numericPrefixRe = regexp.MustCompile(`^\d+(\.\d+)*\.?\s`)

// ClassifyHeuristic is the high-confidence pass: a block is a heading iff it
// carries a numeric dot-separated prefix and is typographically prominent
// (bold, or larger than the body size). The level is the prefix depth;
// prefixes deeper than 3 stay Unclassified rather than being truncated.
// Returns a new slice; input blocks are not mutated.
func ClassifyHeuristic(blocks []Block, bodySize float64) []Block {
	out := make([]Block, len(blocks))
	copy(out, blocks)

	for i, b := range out {
		if b.State != Unclassified {
			continue
		}
		match := numericPrefixRe.FindString(b.Text)
		if match == "" {
			continue
		}
		if !b.Bold && float64(b.Size) <= bodySize {
			continue
		}
		prefix := strings.TrimRight(strings.TrimSpace(match), ".")
		depth := len(strings.Split(prefix, "."))
		if depth > 3 {
			continue
		}
		out[i].State = HeuristicLevel
		out[i].Level = depth
	}
	return out
}
