package client

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"servicelog/internal/app/client/config"
	"servicelog/internal/domain/servicerecord"
	"servicelog/internal/domain/user"
)

// App is the client-side application: an HTTP client for the server API, a
// token file for the session and a SQLite cache for offline reads.
type App struct {
	config     *config.Config
	log        *slog.Logger
	httpClient *httpClient
	cache      *SQLiteCache
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	cache, err := NewSQLiteCache(cfg.CachePath)
	if err != nil {
		return nil, fmt.Errorf("init local cache: %w", err)
	}

	app := &App{
		config:     cfg,
		log:        log,
		httpClient: newHTTPClient(cfg, log),
		cache:      cache,
	}

	if token, err := app.loadToken(); err == nil && token != "" {
		app.httpClient.SetToken(token)
	}

	return app, nil
}

func (a *App) Close() error {
	return a.cache.Close()
}

func (a *App) IsAuthenticated() bool {
	return a.httpClient.token != ""
}

func (a *App) CheckConnection(ctx context.Context) error {
	return a.httpClient.HealthCheck(ctx)
}

// Register creates an account. The server signs the new user in right away,
// so the returned session token is saved immediately.
func (a *App) Register(ctx context.Context, email, password, name string) (user.User, error) {
	result, err := a.httpClient.SignUp(ctx, email, password, name)
	if err != nil {
		return user.User{}, err
	}

	if err := a.saveToken(result.Token); err != nil {
		return user.User{}, fmt.Errorf("save session token: %w", err)
	}
	a.httpClient.SetToken(result.Token)

	return result.User, nil
}

func (a *App) Login(ctx context.Context, email, password string) (user.User, error) {
	result, err := a.httpClient.SignIn(ctx, email, password)
	if err != nil {
		return user.User{}, err
	}

	if err := a.saveToken(result.Token); err != nil {
		return user.User{}, fmt.Errorf("save session token: %w", err)
	}
	a.httpClient.SetToken(result.Token)

	return result.User, nil
}

// Logout destroys the server-side session and removes the local token. The
// local token goes away even when the server call fails.
func (a *App) Logout(ctx context.Context) error {
	var signOutErr error
	if a.IsAuthenticated() {
		signOutErr = a.httpClient.SignOut(ctx)
	}

	if err := a.clearToken(); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}
	a.httpClient.SetToken("")

	if signOutErr != nil {
		a.log.Warn("server sign-out failed, local token removed anyway", "error", signOutErr)
	}
	return nil
}

func (a *App) Session(ctx context.Context) (SessionInfo, error) {
	return a.httpClient.GetSession(ctx)
}

// ListRecords fetches the caller's records and refreshes the cache.
func (a *App) ListRecords(ctx context.Context) ([]servicerecord.ServiceRecord, error) {
	records, err := a.httpClient.ListRecords(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.cache.ReplaceAll(records); err != nil {
		a.log.Warn("failed to refresh local cache", "error", err)
	}
	return records, nil
}

// ListCached reads the last fetched listing without touching the network.
func (a *App) ListCached() ([]CachedRecord, error) {
	return a.cache.List()
}

func (a *App) GetRecord(ctx context.Context, id string) (servicerecord.ServiceRecord, error) {
	rec, err := a.httpClient.GetRecord(ctx, id)
	if err != nil {
		return servicerecord.ServiceRecord{}, err
	}

	if err := a.cache.Save(rec); err != nil {
		a.log.Warn("failed to cache record", "record_id", rec.ID, "error", err)
	}
	return rec, nil
}

func (a *App) GetCached(id string) (CachedRecord, error) {
	return a.cache.Get(id)
}

func (a *App) CreateRecord(ctx context.Context, req servicerecord.CreateRequest) (servicerecord.ServiceRecord, error) {
	rec, err := a.httpClient.CreateRecord(ctx, req)
	if err != nil {
		return servicerecord.ServiceRecord{}, err
	}

	if err := a.cache.Save(rec); err != nil {
		a.log.Warn("failed to cache record", "record_id", rec.ID, "error", err)
	}
	return rec, nil
}

func (a *App) UpdateRecord(ctx context.Context, id string, req servicerecord.UpdateRequest) (servicerecord.ServiceRecord, error) {
	rec, err := a.httpClient.UpdateRecord(ctx, id, req)
	if err != nil {
		return servicerecord.ServiceRecord{}, err
	}

	if err := a.cache.Save(rec); err != nil {
		a.log.Warn("failed to cache record", "record_id", rec.ID, "error", err)
	}
	return rec, nil
}

func (a *App) DeleteRecord(ctx context.Context, id string) error {
	if err := a.httpClient.DeleteRecord(ctx, id); err != nil {
		return err
	}

	if err := a.cache.Delete(id); err != nil {
		a.log.Warn("failed to evict cached record", "record_id", id, "error", err)
	}
	return nil
}

func (a *App) saveToken(token string) error {
	return os.WriteFile(a.config.TokenPath, []byte(token), 0600)
}

func (a *App) loadToken() (string, error) {
	data, err := os.ReadFile(a.config.TokenPath)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (a *App) clearToken() error {
	err := os.Remove(a.config.TokenPath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
