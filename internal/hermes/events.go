package hermes

import "time"

type EvaluationCompletedEvent struct {
	EvaluationID     string    `json:"evaluation_id"`
	Criteria         []string  `json:"criteria"`
	Weights          []float64 `json:"weights"`
	ConsistencyRatio float64   `json:"consistency_ratio"`
	Alternatives     int       `json:"alternatives"`
	Best             string    `json:"best,omitempty"`
	BestScore        float64   `json:"best_score,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

type EvaluationRejectedEvent struct {
	EvaluationID     string    `json:"evaluation_id"`
	Kind             string    `json:"kind"`
	Error            string    `json:"error"`
	ConsistencyRatio *float64  `json:"consistency_ratio,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}
