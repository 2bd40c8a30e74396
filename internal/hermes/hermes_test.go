package hermes

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "arbiter.evaluation.abc.completed", SubjectEvaluationCompleted("abc"))
	assert.Equal(t, "arbiter.evaluation.abc.rejected", SubjectEvaluationRejected("abc"))
}

func TestRejectedEventOmitsMissingRatio(t *testing.T) {
	data, err := json.Marshal(EvaluationRejectedEvent{
		EvaluationID: "abc",
		Kind:         "insufficient_specs",
		Error:        "Not enough specifications provided",
		Timestamp:    time.Unix(0, 0).UTC(),
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "consistency_ratio")

	cr := 0.42
	data, err = json.Marshal(EvaluationRejectedEvent{EvaluationID: "abc", ConsistencyRatio: &cr})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"consistency_ratio":0.42`)
}
