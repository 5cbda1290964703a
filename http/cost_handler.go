package http

import (
	"net/http"

	"hvac-estimator/domain"
	"hvac-estimator/logger"
	"hvac-estimator/service"
)

type CostHandler struct {
	service *service.CostService
	log     logger.Logger
}

func NewCostHandler(service *service.CostService, log logger.Logger) *CostHandler {
	return &CostHandler{service: service, log: log.WithFields(map[string]interface{}{"handler": "cost"})}
}

func (h *CostHandler) EstimateCost(w http.ResponseWriter, r *http.Request) {
	var input domain.CostInput
	if !decodeEstimateRequest(w, r, h.log, costRequestSchema, &input) {
		return
	}

	result, err := h.service.EstimateCost(r.Context(), input)
	if err != nil {
		writeEstimateError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}
