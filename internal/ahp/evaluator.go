package ahp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultThreshold is the conventional upper bound on an acceptable
	// consistency ratio.
	DefaultThreshold = 0.1

	// StatusSuccess marks a completed evaluation.
	StatusSuccess = "Success"
)

// SpecRow is one alternative: its name and one raw measurement per criterion.
type SpecRow struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// SpecsTable is the header row (name column label followed by criterion names)
// plus one row per alternative.
type SpecsTable struct {
	Header []string  `json:"header,omitempty"`
	Rows   []SpecRow `json:"rows"`
}

// Criteria returns the criterion names from the header, or generated C1..Cn
// labels when the header does not describe n criteria.
func (t SpecsTable) Criteria(n int) []string {
	names := make([]string, n)
	if len(t.Header) == n+1 {
		copy(names, t.Header[1:])
		return names
	}
	for i := range names {
		names[i] = fmt.Sprintf("C%d", i+1)
	}
	return names
}

// Contribution is one criterion's share of an alternative's total.
type Contribution struct {
	Criterion string  `json:"criterion"`
	Value     float64 `json:"value"`
	Weight    float64 `json:"weight"`
	Weighted  float64 `json:"weighted"`
}

// AlternativeScore is the per-criterion breakdown and total for one alternative.
type AlternativeScore struct {
	Name          string         `json:"name"`
	Contributions []Contribution `json:"contributions"`
	Total         float64        `json:"total_score"`
}

// Weighted returns the per-criterion weighted contributions in criterion order.
func (a AlternativeScore) Weighted() []float64 {
	out := make([]float64, len(a.Contributions))
	for i, c := range a.Contributions {
		out[i] = c.Weighted
	}
	return out
}

// Evaluation is the outcome of a successful Evaluate call.
type Evaluation struct {
	Criteria     []string           `json:"criteria"`
	Weights      []float64          `json:"weights"`
	Consistency  Consistency        `json:"consistency"`
	Alternatives []AlternativeScore `json:"alternatives"`
	Status       string             `json:"status"`
}

// Totals returns each alternative's total score in input order.
func (e *Evaluation) Totals() []float64 {
	out := make([]float64, len(e.Alternatives))
	for i, a := range e.Alternatives {
		out[i] = a.Total
	}
	return out
}

// Evaluator runs the weight, consistency and scoring stages in order. It holds
// no state between calls and is safe for concurrent use.
type Evaluator struct {
	threshold   float64
	randomIndex RandomIndexTable
	logger      *slog.Logger
}

// NewEvaluator creates an Evaluator. A non-positive threshold falls back to
// DefaultThreshold and a nil table to DefaultRandomIndex.
func NewEvaluator(threshold float64, randomIndex RandomIndexTable, logger *slog.Logger) *Evaluator {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if randomIndex == nil {
		randomIndex = DefaultRandomIndex()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		threshold:   threshold,
		randomIndex: randomIndex,
		logger:      logger,
	}
}

// Threshold returns the consistency ratio above which matrices are rejected.
func (e *Evaluator) Threshold() float64 { return e.threshold }

// RandomIndex returns the table used to normalise consistency indices.
func (e *Evaluator) RandomIndex() RandomIndexTable { return e.randomIndex }

// Weigh derives weights and checks their consistency without scoring anything.
func (e *Evaluator) Weigh(matrix ComparisonMatrix) ([]float64, Consistency, error) {
	weights, err := EstimateWeights(matrix)
	if err != nil {
		return nil, Consistency{}, err
	}

	c, err := CheckConsistency(matrix, weights, e.randomIndex)
	if err != nil {
		return nil, Consistency{}, &EvaluationError{Kind: KindWeightCalculation, Err: err}
	}
	e.logger.Debug("weights derived", "criteria", len(weights), "lambda_max", c.LambdaMax, "consistency_ratio", c.Ratio)

	if !c.Finite() || c.Ratio > e.threshold {
		e.logger.Warn("comparison matrix rejected", "consistency_ratio", c.Ratio, "threshold", e.threshold)
		return weights, c, &EvaluationError{Kind: KindInconsistentJudgments, Ratio: c.Ratio}
	}
	return weights, c, nil
}

// Evaluate derives criteria weights from matrix, rejects inconsistent
// judgments, and scores every alternative in specs. Any failure returns a nil
// Evaluation and an *EvaluationError.
func (e *Evaluator) Evaluate(specs SpecsTable, matrix ComparisonMatrix) (*Evaluation, error) {
	weights, c, err := e.Weigh(matrix)
	if err != nil {
		return nil, err
	}

	if len(specs.Rows) == 0 {
		return nil, &EvaluationError{Kind: KindInsufficientSpecs}
	}

	alternatives, err := ScoreAlternatives(specs, weights)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("alternatives scored", "alternatives", len(alternatives))

	return &Evaluation{
		Criteria:     specs.Criteria(len(weights)),
		Weights:      weights,
		Consistency:  c,
		Alternatives: alternatives,
		Status:       StatusSuccess,
	}, nil
}

// ScoreAlternatives multiplies each alternative's values element-wise by the
// weights. A row whose length differs from the weight vector fails instead of
// being truncated.
func ScoreAlternatives(specs SpecsTable, weights []float64) ([]AlternativeScore, error) {
	n := len(weights)
	if n == 0 {
		return nil, &EvaluationError{Kind: KindScoringShape, Err: fmt.Errorf("no criteria weights")}
	}
	names := specs.Criteria(n)
	w := mat.NewVecDense(n, weights)

	scores := make([]AlternativeScore, 0, len(specs.Rows))
	for _, row := range specs.Rows {
		if len(row.Values) != n {
			return nil, &EvaluationError{
				Kind: KindScoringShape,
				Err:  fmt.Errorf("alternative %q has %d values, expected %d criteria", row.Name, len(row.Values), n),
			}
		}

		var product mat.VecDense
		product.MulElemVec(mat.NewVecDense(n, row.Values), w)
		weighted := product.RawVector().Data

		total := floats.Sum(weighted)
		if math.IsNaN(total) || math.IsInf(total, 0) {
			return nil, &EvaluationError{
				Kind: KindScoringShape,
				Err:  fmt.Errorf("alternative %q has a non-finite score", row.Name),
			}
		}

		contributions := make([]Contribution, n)
		for i := range contributions {
			contributions[i] = Contribution{
				Criterion: names[i],
				Value:     row.Values[i],
				Weight:    weights[i],
				Weighted:  weighted[i],
			}
		}
		scores = append(scores, AlternativeScore{
			Name:          row.Name,
			Contributions: contributions,
			Total:         total,
		})
	}
	return scores, nil
}
