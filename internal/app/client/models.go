package client

import (
	"time"

	"servicelog/internal/domain/servicerecord"
	"servicelog/internal/domain/session"
	"servicelog/internal/domain/user"
)

// AuthResult is what the server returns from sign-up and sign-in.
type AuthResult struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

// SessionInfo describes the current session as reported by the server.
type SessionInfo struct {
	Session session.Session `json:"session"`
	User    user.User       `json:"user"`
}

// CachedRecord is a service record as held in the local cache, with the
// time it was last fetched from the server.
type CachedRecord struct {
	servicerecord.ServiceRecord
	CachedAt time.Time `json:"cachedAt"`
}
