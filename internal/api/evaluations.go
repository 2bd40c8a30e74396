package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Arbiter/internal/ahp"
	"github.com/MikeSquared-Agency/Arbiter/internal/hermes"
	"github.com/MikeSquared-Agency/Arbiter/internal/metrics"
)

type EvaluationsHandler struct {
	evaluator *ahp.Evaluator
	hermes    hermes.Client
	recorder  *metrics.Recorder
	logger    *slog.Logger
}

func NewEvaluationsHandler(e *ahp.Evaluator, h hermes.Client, rec *metrics.Recorder, logger *slog.Logger) *EvaluationsHandler {
	return &EvaluationsHandler{evaluator: e, hermes: h, recorder: rec, logger: logger}
}

type EvaluateRequest struct {
	// Criteria names the matrix rows; used as the header when Header is empty.
	Criteria     []string             `json:"criteria,omitempty"`
	Matrix       ahp.ComparisonMatrix `json:"matrix"`
	Header       []string             `json:"header,omitempty"`
	Alternatives []ahp.SpecRow        `json:"alternatives"`
}

func (req *EvaluateRequest) specs() ahp.SpecsTable {
	header := req.Header
	if len(header) == 0 && len(req.Criteria) > 0 {
		header = append([]string{"Alternative"}, req.Criteria...)
	}
	return ahp.SpecsTable{Header: header, Rows: req.Alternatives}
}

type EvaluateResponse struct {
	ID             string                  `json:"id"`
	Status         string                  `json:"status"`
	Criteria       []string                `json:"criteria"`
	Weights        []float64               `json:"weights"`
	Consistency    ahp.Consistency         `json:"consistency"`
	Alternatives   []ahp.AlternativeScore  `json:"alternatives"`
	Ranking        []ahp.RankedAlternative `json:"ranking"`
	Recommendation *ahp.Recommendation     `json:"recommendation,omitempty"`
	Warnings       []string                `json:"warnings,omitempty"`
}

type ErrorResponse struct {
	ID               string   `json:"id,omitempty"`
	Error            string   `json:"error"`
	Kind             string   `json:"kind,omitempty"`
	ConsistencyRatio *float64 `json:"consistency_ratio,omitempty"`
}

// Create runs a full evaluation.
// POST /api/v1/evaluations
func (h *EvaluationsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	id := uuid.New().String()
	warnings := req.Matrix.Warnings(ahp.ReciprocityTolerance)
	for _, msg := range warnings {
		h.logger.Warn("comparison matrix warning", "evaluation_id", id, "warning", msg)
	}

	start := time.Now()
	eval, err := h.evaluator.Evaluate(req.specs(), req.Matrix)
	elapsed := time.Since(start)

	if err != nil {
		resp := errorResponse(id, err)
		h.recorder.ObserveEvaluation(resp.Kind, req.Matrix.Dim(), ratioOrZero(resp.ConsistencyRatio), resp.ConsistencyRatio != nil, elapsed)
		h.publish(hermes.SubjectEvaluationRejected(id), hermes.EvaluationRejectedEvent{
			EvaluationID:     id,
			Kind:             resp.Kind,
			Error:            resp.Error,
			ConsistencyRatio: resp.ConsistencyRatio,
			Timestamp:        time.Now().UTC(),
		})
		writeJSON(w, statusFor(err), resp)
		return
	}

	h.recorder.ObserveEvaluation(metrics.OutcomeSuccess, len(eval.Weights), eval.Consistency.Ratio, true, elapsed)

	resp := EvaluateResponse{
		ID:           id,
		Status:       eval.Status,
		Criteria:     eval.Criteria,
		Weights:      eval.Weights,
		Consistency:  eval.Consistency,
		Alternatives: eval.Alternatives,
		Ranking:      eval.Ranked(),
		Warnings:     warnings,
	}
	event := hermes.EvaluationCompletedEvent{
		EvaluationID:     id,
		Criteria:         eval.Criteria,
		Weights:          eval.Weights,
		ConsistencyRatio: eval.Consistency.Ratio,
		Alternatives:     len(eval.Alternatives),
		Timestamp:        time.Now().UTC(),
	}
	if rec, ok := ahp.Recommend(resp.Ranking); ok {
		resp.Recommendation = &rec
		event.Best, event.BestScore = rec.Best, rec.BestScore
	} else if len(resp.Ranking) == 1 {
		event.Best, event.BestScore = resp.Ranking[0].Name, resp.Ranking[0].Total
	}
	h.publish(hermes.SubjectEvaluationCompleted(id), event)

	writeJSON(w, http.StatusOK, resp)
}

type WeightsRequest struct {
	Matrix ahp.ComparisonMatrix `json:"matrix"`
}

type WeightsResponse struct {
	Weights     []float64       `json:"weights"`
	Consistency ahp.Consistency `json:"consistency"`
	Consistent  bool            `json:"consistent"`
	Threshold   float64         `json:"threshold"`
	Warnings    []string        `json:"warnings,omitempty"`
}

// Weights derives criteria weights and reports consistency without scoring.
// An inconsistent matrix is not an error here; Consistent is false instead.
// POST /api/v1/weights
func (h *EvaluationsHandler) Weights(w http.ResponseWriter, r *http.Request) {
	var req WeightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return
	}

	weights, c, err := h.evaluator.Weigh(req.Matrix)
	var evalErr *ahp.EvaluationError
	if err != nil && (!errors.As(err, &evalErr) || evalErr.Kind != ahp.KindInconsistentJudgments || !c.Finite()) {
		writeJSON(w, statusFor(err), errorResponse("", err))
		return
	}

	writeJSON(w, http.StatusOK, WeightsResponse{
		Weights:     weights,
		Consistency: c,
		Consistent:  err == nil,
		Threshold:   h.evaluator.Threshold(),
		Warnings:    req.Matrix.Warnings(ahp.ReciprocityTolerance),
	})
}

// RandomIndex returns the random index table and threshold in use.
// GET /api/v1/random-index
func (h *EvaluationsHandler) RandomIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"random_index": h.evaluator.RandomIndex(),
		"threshold":    h.evaluator.Threshold(),
	})
}

func (h *EvaluationsHandler) publish(subject string, event interface{}) {
	if h.hermes == nil {
		return
	}
	if err := h.hermes.Publish(subject, event); err != nil {
		h.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

func errorResponse(id string, err error) ErrorResponse {
	resp := ErrorResponse{ID: id, Error: err.Error(), Kind: "internal"}
	var evalErr *ahp.EvaluationError
	if errors.As(err, &evalErr) {
		resp.Kind = evalErr.Kind.String()
		if evalErr.Kind == ahp.KindInconsistentJudgments && (ahp.Consistency{Ratio: evalErr.Ratio}).Finite() {
			cr := evalErr.Ratio
			resp.ConsistencyRatio = &cr
		}
	}
	return resp
}

func statusFor(err error) int {
	var evalErr *ahp.EvaluationError
	if errors.As(err, &evalErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func ratioOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
