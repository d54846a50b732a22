package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	authmw "servicelog/internal/app/server/api/http/middleware/auth"
	"servicelog/internal/domain/session"
	"servicelog/internal/domain/user"
)

type Handler struct {
	users     user.Servicer
	sessions  session.Servicer
	log       *slog.Logger
	public    huma.Middlewares
	protected huma.Middlewares
}

func NewHandler(users user.Servicer, sessions session.Servicer, log *slog.Logger, public, protected huma.Middlewares) *Handler {
	return &Handler{
		users:     users,
		sessions:  sessions,
		log:       log,
		public:    public,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.signUpOp(), h.signUp)
	huma.Register(api, h.signInOp(), h.signIn)
	huma.Register(api, h.signOutOp(), h.signOut)
	huma.Register(api, h.getSessionOp(), h.getSession)
}

func (h *Handler) signUp(ctx context.Context, input *signUpInput) (*authOutput, error) {
	u, err := h.users.Register(ctx, input.Body.Email, input.Body.Password, input.Body.Name)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrEmailTaken):
			return nil, huma.Error422UnprocessableEntity("User already exists")
		case errors.Is(err, user.ErrInvalidInput):
			return nil, huma.Error400BadRequest("Invalid sign-up data")
		default:
			h.log.Error("sign-up failed", "error", err)
			return nil, huma.Error500InternalServerError("Internal server error")
		}
	}

	return h.issueSession(ctx, u)
}

func (h *Handler) signIn(ctx context.Context, input *signInInput) (*authOutput, error) {
	u, err := h.users.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidAuth) {
			return nil, huma.Error401Unauthorized("Invalid email or password")
		}
		h.log.Error("sign-in failed", "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return h.issueSession(ctx, u)
}

func (h *Handler) issueSession(ctx context.Context, u user.User) (*authOutput, error) {
	token, sess, err := h.sessions.Create(ctx, u.ID)
	if err != nil {
		h.log.Error("failed to create session", "user_id", u.ID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &authOutput{
		SetCookie: sessionCookie(token, sess.ExpiresAt),
		Body:      authResponse{Token: token, User: u},
	}, nil
}

func (h *Handler) signOut(ctx context.Context, input *signOutInput) (*signOutOutput, error) {
	if input.Token != "" {
		if err := h.sessions.Destroy(ctx, input.Token); err != nil {
			h.log.Error("sign-out failed", "error", err)
			return nil, huma.Error500InternalServerError("Internal server error")
		}
	}

	return &signOutOutput{
		SetCookie: expiredCookie(),
		Body:      signOutResponse{Success: true},
	}, nil
}

func (h *Handler) getSession(ctx context.Context, input *sessionInput) (*sessionOutput, error) {
	userID, ok := authmw.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	sess, err := h.sessions.Get(ctx, input.Token)
	if err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.users.GetByID(ctx, userID)
	if err != nil {
		h.log.Error("failed to load session user", "user_id", userID, "error", err)
		return nil, huma.Error500InternalServerError("Internal server error")
	}

	return &sessionOutput{
		Body: sessionResponse{Session: sess, User: u},
	}, nil
}

func sessionCookie(token string, expiresAt time.Time) http.Cookie {
	return http.Cookie{
		Name:     authmw.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func expiredCookie() http.Cookie {
	return http.Cookie{
		Name:     authmw.CookieName,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
