package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"eduterm/internal/modules/account/domain"
	accountout "eduterm/internal/modules/account/port/out"
	apperrors "eduterm/internal/platform/errors"
)

type RESTClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewRESTClient(baseURL string, logger *zap.Logger) accountout.AuthClient {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func (c *RESTClient) Login(ctx context.Context, creds domain.Credentials) (domain.Token, error) {
	payload := map[string]string{"email": creds.Email, "password": creds.Password}
	token, err := c.postToken(ctx, "/api/auth/login", payload)
	if err != nil {
		return domain.Token{}, err
	}
	c.logger.Info("logged in", zap.String("user", token.User.Email))
	return token, nil
}

func (c *RESTClient) Register(ctx context.Context, reg domain.Registration) (domain.Token, error) {
	payload := map[string]string{"name": reg.Name, "email": reg.Email, "password": reg.Password}
	token, err := c.postToken(ctx, "/api/auth/register", payload)
	if err != nil {
		return domain.Token{}, err
	}
	c.logger.Info("registered", zap.String("user", token.User.Email))
	return token, nil
}

func (c *RESTClient) postToken(ctx context.Context, path string, payload map[string]string) (domain.Token, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return domain.Token{}, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return domain.Token{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Token{}, fmt.Errorf("%w: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return domain.Token{}, err
	}

	var token domain.Token
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return domain.Token{}, fmt.Errorf("decode token: %w", err)
	}
	return token, nil
}

func (c *RESTClient) Me(ctx context.Context, token string) (domain.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/auth/me", nil)
	if err != nil {
		return domain.User{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return domain.User{}, err
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return domain.User{}, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

func (c *RESTClient) UpdateProfile(ctx context.Context, token, name string) (domain.User, error) {
	raw, err := json.Marshal(map[string]string{"name": name})
	if err != nil {
		return domain.User{}, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/users/me", bytes.NewReader(raw))
	if err != nil {
		return domain.User{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.User{}, fmt.Errorf("%w: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return domain.User{}, err
	}

	var user domain.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return domain.User{}, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

func (c *RESTClient) ChangePassword(ctx context.Context, token, current, next string) error {
	raw, err := json.Marshal(map[string]string{"current_password": current, "new_password": next})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+"/api/profile/password", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return apperrors.ErrAuthRequired
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	default:
		return nil
	}
}
