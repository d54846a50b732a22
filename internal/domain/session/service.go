package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"
)

const DefaultTTL = 7 * 24 * time.Hour

type Servicer interface {
	Create(ctx context.Context, userID string) (string, Session, error)
	Validate(ctx context.Context, token string) (string, error)
	Get(ctx context.Context, token string) (Session, error)
	Destroy(ctx context.Context, token string) error
}

type Service struct {
	repo Repository
	ttl  time.Duration
	log  *slog.Logger
}

func NewService(repo Repository, ttl time.Duration, log *slog.Logger) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo: repo,
		ttl:  ttl,
		log:  log.With("component", "session_service"),
	}
}

// Create issues a new opaque token for userID and persists its hash.
func (s *Service) Create(ctx context.Context, userID string) (string, Session, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", Session{}, fmt.Errorf("generate token: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	expiresAt := time.Now().Add(s.ttl)

	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		s.log.Error("failed to save session", "user_id", userID, "error", err)
		return "", Session{}, fmt.Errorf("save session: %w", err)
	}

	return token, Session{UserID: userID, ExpiresAt: expiresAt}, nil
}

// Validate resolves a token to the user it authenticates.
func (s *Service) Validate(ctx context.Context, token string) (string, error) {
	sess, err := s.repo.Find(ctx, hashToken(token))
	if err != nil {
		return "", ErrInvalidSession
	}
	return sess.UserID, nil
}

func (s *Service) Get(ctx context.Context, token string) (Session, error) {
	sess, err := s.repo.Find(ctx, hashToken(token))
	if err != nil {
		return Session{}, ErrInvalidSession
	}
	return sess, nil
}

// Destroy invalidates a token. Unknown tokens are ignored so sign-out is
// always safe to call.
func (s *Service) Destroy(ctx context.Context, token string) error {
	if err := s.repo.Delete(ctx, hashToken(token)); err != nil {
		s.log.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
