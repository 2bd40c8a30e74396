package ahp

import "fmt"

// ErrorKind classifies why an evaluation was rejected.
type ErrorKind int

const (
	// KindWeightCalculation means the comparison matrix could not be normalised.
	KindWeightCalculation ErrorKind = iota + 1
	// KindInconsistentJudgments means the consistency ratio exceeded the threshold
	// or was not finite.
	KindInconsistentJudgments
	// KindInsufficientSpecs means no alternative rows were supplied.
	KindInsufficientSpecs
	// KindScoringShape means an alternative row did not line up with the criteria,
	// or its weighted score was not finite.
	KindScoringShape
)

func (k ErrorKind) String() string {
	switch k {
	case KindWeightCalculation:
		return "weight_calculation"
	case KindInconsistentJudgments:
		return "inconsistent_judgments"
	case KindInsufficientSpecs:
		return "insufficient_specs"
	case KindScoringShape:
		return "scoring_shape"
	default:
		return "unknown"
	}
}

// EvaluationError is the only error type returned by Evaluate. Callers branch on
// Kind; Ratio carries the offending metric for KindInconsistentJudgments.
type EvaluationError struct {
	Kind  ErrorKind
	Ratio float64
	Err   error
}

func (e *EvaluationError) Error() string {
	switch e.Kind {
	case KindWeightCalculation:
		return fmt.Sprintf("Error calculating weights: %v", e.Err)
	case KindInconsistentJudgments:
		return fmt.Sprintf("Criteria matrix inconsistent (CR = %.4f)", e.Ratio)
	case KindInsufficientSpecs:
		return "Not enough specifications provided"
	case KindScoringShape:
		return fmt.Sprintf("Error calculating scores: %v", e.Err)
	default:
		return fmt.Sprintf("evaluation failed: %v", e.Err)
	}
}

func (e *EvaluationError) Unwrap() error { return e.Err }
