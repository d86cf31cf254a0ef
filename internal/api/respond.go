// internal/api/respond.go
package api

import (
	"encoding/json"
	"net/http"

	"platform-finder/internal/common/errors"
)

// envelope is the response body shared by every /api route.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, data, meta interface{}) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: data, Meta: meta})
}

// errorTitles are the short error strings clients match on.
var errorTitles = map[errors.ErrorCode]string{
	errors.ErrCodePlatformNotFound:        "Platform not found",
	errors.ErrCodeInvalidWizardAnswer:     "Invalid wizard answers",
	errors.ErrCodeInvalidTCOInputs:        "Invalid TCO inputs",
	errors.ErrCodeInputParsingFailed:      "Invalid request body",
	errors.ErrCodeCatalogLoadFailed:       "Catalog unavailable",
	errors.ErrCodeCatalogValidationFailed: "Failed to validate catalog data",
	errors.ErrCodeInvalidMomentumWindow:   "Invalid momentum window",
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodePlatformNotFound:
		return http.StatusNotFound
	case errors.ErrCodeInvalidWizardAnswer, errors.ErrCodeInvalidTCOInputs, errors.ErrCodeInputParsingFailed,
		errors.ErrCodeInvalidMomentumWindow:
		return http.StatusBadRequest
	case errors.ErrCodeCatalogLoadFailed, errors.ErrCodeCatalogValidationFailed:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError maps err onto a status code and an error envelope.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	stdErr := errors.Normalize(err)
	status := statusFor(stdErr.Code)

	title, ok := errorTitles[stdErr.Code]
	if !ok {
		title = "Internal server error"
	}
	message := stdErr.Message
	if status < http.StatusInternalServerError && stdErr.Details != "" {
		message = stdErr.Details
	}

	fields := map[string]interface{}{
		"path":   r.URL.Path,
		"code":   string(stdErr.Code),
		"status": status,
	}
	if status >= http.StatusInternalServerError {
		fields["error"] = err.Error()
		s.logger.Error("request failed", fields)
	} else {
		s.logger.Info("request rejected", fields)
	}

	writeJSON(w, status, envelope{
		Success: false,
		Error:   title,
		Message: message,
	})
}
