package http

import (
	"net/http"

	"hvac-estimator/domain"
	"hvac-estimator/logger"
	"hvac-estimator/service"
)

type LoadHandler struct {
	service *service.LoadService
	log     logger.Logger
}

func NewLoadHandler(service *service.LoadService, log logger.Logger) *LoadHandler {
	return &LoadHandler{service: service, log: log.WithFields(map[string]interface{}{"handler": "load"})}
}

func (h *LoadHandler) EstimateLoad(w http.ResponseWriter, r *http.Request) {
	var profile domain.BuildingProfile
	if !decodeEstimateRequest(w, r, h.log, loadRequestSchema, &profile) {
		return
	}

	result, err := h.service.EstimateLoad(r.Context(), profile)
	if err != nil {
		writeEstimateError(w, h.log, err)
		return
	}
	writeJSON(w, h.log, http.StatusOK, result)
}
