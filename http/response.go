package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"hvac-estimator/domain"
	"hvac-estimator/logger"
)

const (
	codeInvalidInput     = "INVALID_INPUT"
	codeSchemaViolation  = "SCHEMA_VIOLATION"
	codeInvalidBody      = "INVALID_BODY"
	codeTableIntegrity   = "TABLE_INTEGRITY"
	codeInternal         = "INTERNAL_ERROR"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeUnsupportedMedia = "UNSUPPORTED_MEDIA_TYPE"
	codeRateLimited      = "RATE_LIMITED"
	codeBodyTooLarge     = "BODY_TOO_LARGE"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Field   string   `json:"field,omitempty"`
	Details []string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, log logger.Logger, status int, v interface{}) {
	// encode into a buffer first so a failure does not leave a half-written 200
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.WithError(err).Error("error encoding response", nil)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("error writing response", nil)
	}
}

func writeError(w http.ResponseWriter, log logger.Logger, status int, resp ErrorResponse) {
	writeJSON(w, log, status, resp)
}

// writeEstimateError maps the domain error taxonomy onto HTTP statuses.
func writeEstimateError(w http.ResponseWriter, log logger.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, log, http.StatusBadRequest, ErrorResponse{
			Code:    codeInvalidInput,
			Message: verr.Error(),
			Field:   verr.Field,
		})
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, log, http.StatusBadRequest, ErrorResponse{Code: codeInvalidInput, Message: err.Error()})
	case errors.Is(err, domain.ErrTableIntegrity):
		log.WithError(err).Error("estimate failed on reference data", nil)
		writeError(w, log, http.StatusInternalServerError, ErrorResponse{
			Code:    codeTableIntegrity,
			Message: "estimate unavailable",
		})
	default:
		log.WithError(err).Error("estimate failed", nil)
		writeError(w, log, http.StatusInternalServerError, ErrorResponse{
			Code:    codeInternal,
			Message: "internal server error",
		})
	}
}
