package http

import (
	"net/http"
	"strconv"

	"hvac-estimator/domain"
	"hvac-estimator/estimator"
	"hvac-estimator/logger"
	"hvac-estimator/service"
)

type HistoryHandler struct {
	service *service.HistoryService
	log     logger.Logger
}

func NewHistoryHandler(service *service.HistoryService, log logger.Logger) *HistoryHandler {
	return &HistoryHandler{service: service, log: log.WithFields(map[string]interface{}{"handler": "history"})}
}

// ListEstimates serves GET /estimates?limit=N.
func (h *HistoryHandler) ListEstimates(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, h.log, http.StatusMethodNotAllowed, ErrorResponse{Code: codeMethodNotAllowed, Message: "method not allowed"})
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeEstimateError(w, h.log, domain.NewValidationError("limit", "must be an integer"))
			return
		}
		limit = n
	}

	records, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		writeEstimateError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, map[string]interface{}{
		"estimates": records,
		"count":     len(records),
	})
}

// Health reports whether the reference tables are complete.
func Health(log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := estimator.VerifyTables(); err != nil {
			log.WithError(err).Error("health check failed", nil)
			writeError(w, log, http.StatusServiceUnavailable, ErrorResponse{Code: codeTableIntegrity, Message: err.Error()})
			return
		}
		writeJSON(w, log, http.StatusOK, map[string]string{
			"status":        "ok",
			"tablesVersion": estimator.TablesVersion,
		})
	}
}
