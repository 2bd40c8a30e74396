package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Arbiter/internal/metrics"
)

type AdminHandler struct {
	recorder *metrics.Recorder
}

func NewAdminHandler(rec *metrics.Recorder) *AdminHandler {
	return &AdminHandler{recorder: rec}
}

// Stats returns evaluation outcome counts since startup.
// GET /api/v1/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.recorder.Stats())
}
