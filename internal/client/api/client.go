// Package api is the HTTP client for the DyslexiAid server.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dyslexiaid/dyslexiaid-go/internal/model"
)

// APIError is a non-2xx response decoded from the server's {error} body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Client talks to the DyslexiAid HTTP JSON API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req model.CreateUserRequest) (*model.RegisterResponse, error) {
	var resp model.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login authenticates and returns the session token and user record.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SubmitResult stores a finished round's result for the authenticated user.
func (c *Client) SubmitResult(ctx context.Context, token string, req model.SubmitResultRequest) (*model.SubmitResultResponse, error) {
	var resp model.SubmitResultResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/test-results/submit", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Results fetches all stored results for the authenticated user.
func (c *Client) Results(ctx context.Context, token string) ([]model.TestResult, error) {
	var resp struct {
		Results []model.TestResult `json:"results"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/api/test-results", token, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// UserID asks the server which user the token belongs to.
func (c *Client) UserID(ctx context.Context, token string) (string, error) {
	var resp struct {
		UserID string `json:"userId"`
	}
	if err := c.doRequest(ctx, http.MethodGet, "/user/id", token, nil, &resp); err != nil {
		return "", err
	}
	return resp.UserID, nil
}

func (c *Client) doRequest(ctx context.Context, method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return &APIError{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
