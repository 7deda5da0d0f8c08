package rank

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/bkristol/outliner/internal/embed"
)

// KeywordBoost is added to a section's score when any boost keyword appears
// in its combined title + refined text.
const KeywordBoost = 0.1

// DefaultBoostKeywords is the stock keyword list used when the caller does
// not supply one.
var DefaultBoostKeywords = []string{
	"packing", "cuisine", "food", "activities", "things to do",
	"entertainment", "nightlife", "tips", "tricks", "guide",
	"plan", "water sports", "coastal", "restaurants", "cities",
	"checklist", "hotel", "transport", "local",
}

// Metadata describes one ranking run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// RankedSection is one entry of the extracted_sections output.
type RankedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

// Subsection is one entry of the subsection_analysis output.
type Subsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// Result is the persisted artifact of a ranking run.
type Result struct {
	Metadata           Metadata        `json:"metadata"`
	ExtractedSections  []RankedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection    `json:"subsection_analysis"`
}

// Ranker scores sections against a persona + task query using embedding
// similarity plus a fixed keyword boost.
type Ranker struct {
	enc      embed.Encoder
	keywords []string
	log      *slog.Logger
}

// NewRanker creates a ranker. With a disabled encoder the keyword boost is
// the whole score; ranking still completes.
func NewRanker(enc embed.Encoder, keywords []string, log *slog.Logger) *Ranker {
	if len(keywords) == 0 {
		keywords = DefaultBoostKeywords
	}
	return &Ranker{enc: enc, keywords: keywords, log: log}
}

// Rank orders sections by relevance to the persona and task, most relevant
// first, and assembles the output record.
func (r *Ranker) Rank(ctx context.Context, sections []Section, documents []string, persona, task string) (Result, error) {
	result := Result{
		Metadata: Metadata{
			InputDocuments:      documents,
			Persona:             persona,
			JobToBeDone:         task,
			ProcessingTimestamp: time.Now().Format(time.RFC3339),
		},
		ExtractedSections:  []RankedSection{},
		SubsectionAnalysis: []Subsection{},
	}
	if len(sections) == 0 {
		return result, nil
	}

	combined := make([]string, len(sections))
	scores := make([]float64, len(sections))
	for i, s := range sections {
		combined[i] = s.Title + " " + s.RefinedText
		if r.hasKeyword(combined[i]) {
			scores[i] = KeywordBoost
		}
	}

	if r.enc.Enabled() {
		query := persona + " - " + task
		vectors, err := r.enc.Encode(ctx, append(combined, query))
		if err != nil {
			return Result{}, fmt.Errorf("encode sections: %w", err)
		}
		if len(vectors) != len(combined)+1 {
			return Result{}, fmt.Errorf("encoder returned %d vectors for %d texts", len(vectors), len(combined)+1)
		}
		queryVec := vectors[len(vectors)-1]
		for i := range sections {
			scores[i] += embed.Cosine(vectors[i], queryVec)
		}
	} else {
		r.log.Info("ranking without embeddings, keyword boost only")
	}

	order := make([]int, len(sections))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	for rankPos, i := range order {
		s := sections[i]
		result.ExtractedSections = append(result.ExtractedSections, RankedSection{
			Document:       s.Document,
			SectionTitle:   s.Title,
			ImportanceRank: rankPos + 1,
			PageNumber:     s.Page,
		})
		result.SubsectionAnalysis = append(result.SubsectionAnalysis, Subsection{
			Document:    s.Document,
			RefinedText: flattenText(s.RefinedText),
			PageNumber:  s.Page,
		})
	}
	return result, nil
}

func (r *Ranker) hasKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range r.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func flattenText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
