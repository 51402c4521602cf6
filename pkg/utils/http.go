package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
)

func WriteJSON(w http.ResponseWriter, payload any, code int) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(payload)
}

func DecodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// APIError describes a request-level failure
// swagger:model APIError
type APIError struct {
	Code              string `json:"code"`
	Message           string `json:"message"`
	Details           any    `json:"details,omitempty"`
	RetryAfterSeconds int    `json:"retryAfterSeconds,omitempty"`
}

// ErrorResponse is the error envelope of every non-2xx response
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error APIError `json:"error"`
}

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeUnavailable    = "UPSTREAM_UNAVAILABLE"
	CodeUnknown        = "UNKNOWN"
)

func WriteError(w http.ResponseWriter, code string, message string, status int) error {
	return WriteJSON(w, ErrorResponse{Error: APIError{Code: code, Message: message}}, status)
}

// WriteValidationError пишет 400 с перечнем полей, не прошедших валидацию.
func WriteValidationError(w http.ResponseWriter, err error) error {
	apiErr := APIError{Code: CodeInvalidRequest, Message: "invalid request"}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make(map[string]string, len(ve))
		for _, err := range ve {
			fields[err.Field()] = err.Tag()
		}
		apiErr.Details = fields
	} else if err != nil {
		apiErr.Message = err.Error()
	}

	return WriteJSON(w, ErrorResponse{Error: apiErr}, http.StatusBadRequest)
}
