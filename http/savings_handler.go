package http

import (
	"net/http"

	"hvac-estimator/domain"
	"hvac-estimator/logger"
	"hvac-estimator/service"
)

type SavingsHandler struct {
	service *service.SavingsService
	log     logger.Logger
}

func NewSavingsHandler(service *service.SavingsService, log logger.Logger) *SavingsHandler {
	return &SavingsHandler{service: service, log: log.WithFields(map[string]interface{}{"handler": "savings"})}
}

func (h *SavingsHandler) ProjectSavings(w http.ResponseWriter, r *http.Request) {
	var input domain.SavingsInput
	if !decodeEstimateRequest(w, r, h.log, savingsRequestSchema, &input) {
		return
	}

	result, err := h.service.ProjectSavings(r.Context(), input)
	if err != nil {
		writeEstimateError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}
