package session

import (
	"context"
	"time"
)

// Repository stores session token hashes. Find must not return expired
// sessions; Delete of an unknown hash is a no-op.
type Repository interface {
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	Find(ctx context.Context, tokenHash string) (Session, error)
	Delete(ctx context.Context, tokenHash string) error
}
