package auth

import (
	"net/http"

	"servicelog/internal/domain/session"
	"servicelog/internal/domain/user"
)

type signUpInput struct {
	Body signUpRequest
}

type signUpRequest struct {
	Email    string `json:"email,omitempty" doc:"Account email"`
	Password string `json:"password,omitempty" doc:"Plaintext password, stored as a bcrypt hash"`
	Name     string `json:"name,omitempty" doc:"Display name"`
}

type signInInput struct {
	Body signInRequest
}

type signInRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

// authOutput is shared by sign-up and sign-in: both issue a session.
type authOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      authResponse
}

type authResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

type signOutInput struct {
	Token string `cookie:"servicelog_session" doc:"Session cookie"`
}

type signOutOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      signOutResponse
}

type signOutResponse struct {
	Success bool `json:"success"`
}

type sessionInput struct {
	Token string `cookie:"servicelog_session" doc:"Session cookie"`
}

type sessionOutput struct {
	Body sessionResponse
}

type sessionResponse struct {
	Session session.Session `json:"session"`
	User    user.User       `json:"user"`
}
