package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"hvac-estimator/domain"
	"hvac-estimator/logger"
)

const maxBodyBytes = 64 << 10

// decodeEstimateRequest enforces POST + JSON, validates the body against
// schema and decodes it into dst. It writes the error reply itself and
// returns false when the request must not proceed.
func decodeEstimateRequest(
	w http.ResponseWriter,
	r *http.Request,
	log logger.Logger,
	schema *gojsonschema.Schema,
	dst interface{},
) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, log, http.StatusMethodNotAllowed, ErrorResponse{
			Code:    codeMethodNotAllowed,
			Message: "method not allowed",
		})
		return false
	}

	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "application/json") {
		writeError(w, log, http.StatusUnsupportedMediaType, ErrorResponse{
			Code:    codeUnsupportedMedia,
			Message: "Content-Type must be application/json",
		})
		return false
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, log, http.StatusRequestEntityTooLarge, ErrorResponse{
			Code:    codeBodyTooLarge,
			Message: fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit),
		})
		return false
	}
	if err != nil {
		writeError(w, log, http.StatusBadRequest, ErrorResponse{Code: codeInvalidBody, Message: "request body unreadable"})
		return false
	}

	violations, err := schemaErrors(schema, body)
	if err != nil {
		log.Debug("error parsing request body", map[string]interface{}{"error": err.Error()})
		writeError(w, log, http.StatusBadRequest, ErrorResponse{Code: codeInvalidBody, Message: "invalid request body"})
		return false
	}
	if len(violations) > 0 {
		log.Debug("request failed schema validation", map[string]interface{}{"violations": violations})
		writeError(w, log, http.StatusBadRequest, ErrorResponse{
			Code:    codeSchemaViolation,
			Message: "request does not match schema",
			Details: violations,
		})
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			writeEstimateError(w, log, verr)
			return false
		}
		writeError(w, log, http.StatusBadRequest, ErrorResponse{Code: codeInvalidBody, Message: "invalid request body"})
		return false
	}
	return true
}
