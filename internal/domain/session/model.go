package session

import (
	"errors"
	"time"
)

// Session is the server-side half of a session cookie. Only a sha256 hash of
// the token ever reaches storage.
type Session struct {
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

var ErrInvalidSession = errors.New("invalid or expired session")
