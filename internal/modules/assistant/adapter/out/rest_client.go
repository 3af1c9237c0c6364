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

	"eduterm/internal/modules/assistant/domain"
	assistantout "eduterm/internal/modules/assistant/port/out"
	apperrors "eduterm/internal/platform/errors"
)

type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  assistantout.TokenSource
}

func NewRESTClient(baseURL string, tokens assistantout.TokenSource) assistantout.Client {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		// Model responses can take a while.
		http:   &http.Client{Timeout: 120 * time.Second},
		tokens: tokens,
	}
}

func (c *RESTClient) Chat(ctx context.Context, message string, history []domain.Message) (string, error) {
	type turn struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	}
	payload := struct {
		Message string `json:"message"`
		History []turn `json:"history"`
	}{Message: message}
	for _, m := range history {
		payload.History = append(payload.History, turn{Role: string(m.Role), Content: m.Content})
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/ai/chat", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: chat: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return "", apperrors.ErrAuthRequired
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var result struct {
		Response string `json:"response"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return result.Response, nil
}
