package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"servicelog/internal/domain/session"
)

type SessionRepository struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

func NewSessionRepository(pool *pgxpool.Pool, log *slog.Logger) *SessionRepository {
	return &SessionRepository{
		pool: pool,
		log:  log.With("component", "session_repository"),
	}
}

func (r *SessionRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	const query = `
		INSERT INTO sessions (user_id, token_hash, expires_at)
		VALUES ($1, decode($2, 'hex'), $3)`

	if _, err := r.pool.Exec(ctx, query, userID, tokenHash, expiresAt); err != nil {
		r.log.Error("failed to create session", "user_id", userID, "error", err)
		return fmt.Errorf("create session: %w", err)
	}

	return nil
}

func (r *SessionRepository) Find(ctx context.Context, tokenHash string) (session.Session, error) {
	const query = `
		SELECT user_id, expires_at, created_at
		FROM sessions
		WHERE token_hash = decode($1, 'hex') AND expires_at > NOW()`

	var sess session.Session
	err := r.pool.QueryRow(ctx, query, tokenHash).
		Scan(&sess.UserID, &sess.ExpiresAt, &sess.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return sess, session.ErrInvalidSession
		}
		r.log.Error("failed to find session", "error", err)
		return sess, fmt.Errorf("find session: %w", err)
	}

	return sess, nil
}

func (r *SessionRepository) Delete(ctx context.Context, tokenHash string) error {
	const query = `DELETE FROM sessions WHERE token_hash = decode($1, 'hex')`

	if _, err := r.pool.Exec(ctx, query, tokenHash); err != nil {
		r.log.Error("failed to delete session", "error", err)
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
