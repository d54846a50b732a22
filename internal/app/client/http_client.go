package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"servicelog/internal/app/client/config"
	"servicelog/internal/domain/servicerecord"
)

// sessionCookieName must match the cookie the server issues on sign-in.
const sessionCookieName = "servicelog_session"

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "ServiceLog-Client/1.0",
	}
}

func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck verifies the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status %d", resp.StatusCode)
	}
	return nil
}

func (h *httpClient) SignUp(ctx context.Context, email, password, name string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password, "name": name}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/sign-up/email", body)
	if err != nil {
		return AuthResult{}, err
	}

	var result AuthResult
	if err := h.parseResponse(resp, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}

func (h *httpClient) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/sign-in/email", body)
	if err != nil {
		return AuthResult{}, err
	}

	var result AuthResult
	if err := h.parseResponse(resp, &result); err != nil {
		return AuthResult{}, err
	}
	return result, nil
}

func (h *httpClient) SignOut(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/auth/sign-out", struct{}{})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) GetSession(ctx context.Context) (SessionInfo, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/auth/get-session", nil)
	if err != nil {
		return SessionInfo{}, err
	}

	var info SessionInfo
	if err := h.parseResponse(resp, &info); err != nil {
		return SessionInfo{}, err
	}
	return info, nil
}

func (h *httpClient) ListRecords(ctx context.Context) ([]servicerecord.ServiceRecord, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/service-records", nil)
	if err != nil {
		return nil, err
	}

	var records []servicerecord.ServiceRecord
	if err := h.parseResponse(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (h *httpClient) GetRecord(ctx context.Context, id string) (servicerecord.ServiceRecord, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/service-records/"+id, nil)
	if err != nil {
		return servicerecord.ServiceRecord{}, err
	}

	var rec servicerecord.ServiceRecord
	if err := h.parseResponse(resp, &rec); err != nil {
		return servicerecord.ServiceRecord{}, err
	}
	return rec, nil
}

func (h *httpClient) CreateRecord(ctx context.Context, req servicerecord.CreateRequest) (servicerecord.ServiceRecord, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/service-records", req)
	if err != nil {
		return servicerecord.ServiceRecord{}, err
	}

	var created struct {
		Data servicerecord.ServiceRecord `json:"data"`
	}
	if err := h.parseResponse(resp, &created); err != nil {
		return servicerecord.ServiceRecord{}, err
	}
	return created.Data, nil
}

func (h *httpClient) UpdateRecord(ctx context.Context, id string, req servicerecord.UpdateRequest) (servicerecord.ServiceRecord, error) {
	resp, err := h.doRequest(ctx, http.MethodPut, "/api/service-records/"+id, req)
	if err != nil {
		return servicerecord.ServiceRecord{}, err
	}

	var rec servicerecord.ServiceRecord
	if err := h.parseResponse(resp, &rec); err != nil {
		return servicerecord.ServiceRecord{}, err
	}
	return rec, nil
}

func (h *httpClient) DeleteRecord(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/api/service-records/"+id, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.config.Origin != "" {
		req.Header.Set("Origin", h.config.Origin)
	}
	if h.token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: h.token})
	}

	h.log.Debug("sending request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("perform request: %w", err)
	}
	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	h.log.Debug("received response", "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error    string   `json:"error"`
			Required []string `json:"required"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			if len(errResp.Required) > 0 {
				return fmt.Errorf("server error: %s (required: %v)", errResp.Error, errResp.Required)
			}
			return fmt.Errorf("server error: %s", errResp.Error)
		}
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}

	if result != nil && len(body) > 0 {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}
