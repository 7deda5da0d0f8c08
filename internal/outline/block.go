package outline

// State is the classification state of a block. It is set at most once:
// the heuristic pass only touches Unclassified blocks and the semantic pass
// only touches blocks the heuristic pass left Unclassified.
type State int

const (
	Unclassified State = iota
	HeuristicLevel
	SemanticCandidate
)

func (s State) String() string {
	switch s {
	case HeuristicLevel:
		return "heuristic"
	case SemanticCandidate:
		return "semantic"
	default:
		return "unclassified"
	}
}

// Block is a classification candidate derived from a fragment.
type Block struct {
	Text  string
	Size  int
	Bold  bool
	Page  int
	Y     float64
	State State
	Level int // 1-3, only meaningful when State == HeuristicLevel
}

// Entry is one outline item in the persisted artifact.
type Entry struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// Result is the persisted artifact for one document. Outline is never nil so
// an empty outline serializes as [].
type Result struct {
	Title   string  `json:"title"`
	Outline []Entry `json:"outline"`
}
