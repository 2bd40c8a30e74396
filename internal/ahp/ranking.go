package ahp

import (
	"fmt"
	"sort"
)

// RankedAlternative is an alternative's position in the final ordering.
type RankedAlternative struct {
	Rank  int     `json:"rank"`
	Name  string  `json:"name"`
	Total float64 `json:"total_score"`
}

// Ranked orders alternatives by total score, highest first. Ties keep input order.
func (e *Evaluation) Ranked() []RankedAlternative {
	ranked := make([]RankedAlternative, len(e.Alternatives))
	for i, a := range e.Alternatives {
		ranked[i] = RankedAlternative{Name: a.Name, Total: a.Total}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})
	for i := range ranked {
		ranked[i].Rank = i + 1
	}
	return ranked
}

// Margin thresholds, in percent, separating the recommendation verdicts.
const (
	SignificantMargin = 15.0
	ClearMargin       = 5.0
)

// Recommendation compares the two best alternatives.
type Recommendation struct {
	Best          string  `json:"best"`
	BestScore     float64 `json:"best_score"`
	RunnerUp      string  `json:"runner_up"`
	RunnerUpScore float64 `json:"runner_up_score"`
	MarginPercent float64 `json:"margin_percent"`
	Verdict       string  `json:"verdict"`
	Summary       string  `json:"summary"`
}

// Recommend builds a recommendation from a ranking. ok is false when fewer than
// two alternatives were ranked.
func Recommend(ranked []RankedAlternative) (rec Recommendation, ok bool) {
	if len(ranked) < 2 {
		return Recommendation{}, false
	}
	best, second := ranked[0], ranked[1]

	var margin float64
	if second.Total > 0 {
		margin = (best.Total - second.Total) / second.Total * 100
	}

	rec = Recommendation{
		Best:          best.Name,
		BestScore:     best.Total,
		RunnerUp:      second.Name,
		RunnerUpScore: second.Total,
		MarginPercent: margin,
	}

	summary := fmt.Sprintf("Based on your criteria preferences, %s is the optimal choice with an overall score of %.4f. ",
		best.Name, best.Total)
	switch {
	case margin > SignificantMargin:
		rec.Verdict = "significantly outperforms"
		summary += fmt.Sprintf("It significantly outperforms %s by %.1f%%.", second.Name, margin)
	case margin > ClearMargin:
		rec.Verdict = "outperforms"
		summary += fmt.Sprintf("It outperforms %s by %.1f%%.", second.Name, margin)
	default:
		rec.Verdict = "slightly edges out"
		summary += fmt.Sprintf("It slightly edges out %s (difference: %.1f%%).", second.Name, margin)
	}
	rec.Summary = summary
	return rec, true
}
