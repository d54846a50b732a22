package apierror

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// Model is the wire shape of every error response the API produces.
type Model struct {
	status   int
	Message  string   `json:"error" example:"Record not found" doc:"Human-readable error"`
	Required []string `json:"required,omitempty" doc:"Required fields missing from the request"`
}

func (m *Model) Error() string {
	return m.Message
}

func (m *Model) GetStatus() int {
	return m.status
}

// ContentType keeps error bodies as plain JSON rather than problem+json.
func (m *Model) ContentType(string) string {
	return "application/json"
}

// Validation builds a 400 response, optionally naming the missing fields.
func Validation(message string, required []string) error {
	return &Model{
		status:   http.StatusBadRequest,
		Message:  message,
		Required: required,
	}
}

// Replace huma's RFC 7807 error model so huma.Error* helpers and framework
// errors all share the Model shape. Internal errors never leak detail.
func init() {
	huma.NewError = func(status int, message string, _ ...error) huma.StatusError {
		if status == http.StatusInternalServerError {
			message = "Internal server error"
		}
		return &Model{status: status, Message: message}
	}
}
