// Package identity implements the HTTP client for the external identity
// worker, which verifies credentials and issues a role-bearing token.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/roomly/storefront-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config holds the identity worker connection settings.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    struct {
		Name  string `json:"name"`
		Email string `json:"email"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Verify posts the credentials to the worker's /login endpoint. Any
// non-success response, of whatever kind, maps to ErrInvalidCredentials; the
// worker's reasons are not distinguished here.
func (c *Client) Verify(ctx context.Context, email, password string) (*domain.Identity, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("identity request encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity worker: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrInvalidCredentials
	}

	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("identity response decode: %w", err)
	}
	if !out.Success {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.Role(out.User.Role)
	if !role.Valid() {
		role = domain.RoleEndUser
	}

	return &domain.Identity{
		Name:     out.User.Name,
		Email:    out.User.Email,
		Role:     role,
		APIToken: out.Token,
	}, nil
}
