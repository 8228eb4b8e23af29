package server

import (
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/pixelgrid/overlaykit/pkg/errors"
	"github.com/pixelgrid/overlaykit/pkg/profile"
)

// errorResponse is the JSON body for failed requests.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to an HTTP status via its structured code and
// writes the JSON error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := apperrors.GetCode(err)

	switch {
	case errors.Is(err, profile.ErrNotFound):
		status = http.StatusNotFound
		code = apperrors.ErrCodeProfileNotFound
	case code == apperrors.ErrCodeProfileNotFound || code == apperrors.ErrCodeNotFound:
		status = http.StatusNotFound
	case code != "" && code != apperrors.ErrCodeInternal && code != apperrors.ErrCodeStore:
		// All INVALID_* codes are caller mistakes.
		status = http.StatusBadRequest
	}

	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: apperrors.UserMessage(err)})
}

// decodeJSON decodes a request body, rejecting unknown fields so typos in
// client payloads fail loudly instead of silently using defaults.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body")
	}
	return nil
}
