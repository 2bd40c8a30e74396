package hermes

const (
	SubjectEvaluationWildcard = "arbiter.evaluation.>"

	StreamName   = "ARBITER_EVALUATIONS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectEvaluationCompleted(id string) string { return "arbiter.evaluation." + id + ".completed" }
func SubjectEvaluationRejected(id string) string  { return "arbiter.evaluation." + id + ".rejected" }
