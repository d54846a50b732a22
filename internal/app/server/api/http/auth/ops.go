package auth

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) signUpOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-sign-up",
		Method:      http.MethodPost,
		Path:        "/api/auth/sign-up/email",
		Summary:     "Register a new account",
		Tags:        []string{"auth"},
		Middlewares: h.public,
	}
}

func (h *Handler) signInOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-sign-in",
		Method:      http.MethodPost,
		Path:        "/api/auth/sign-in/email",
		Summary:     "Sign in with email and password",
		Tags:        []string{"auth"},
		Middlewares: h.public,
	}
}

func (h *Handler) signOutOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-sign-out",
		Method:      http.MethodPost,
		Path:        "/api/auth/sign-out",
		Summary:     "Destroy the current session",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) getSessionOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-get-session",
		Method:      http.MethodGet,
		Path:        "/api/auth/get-session",
		Summary:     "Describe the current session and its user",
		Tags:        []string{"auth"},
		Security:    []map[string][]string{{"cookie": {}}},
		Middlewares: h.protected,
	}
}
