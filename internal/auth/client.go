// Package auth integrates with the external authentication service that owns
// credentials, tokens, and sessions. This backend never stores passwords; it
// proxies registration and verifies bearer tokens.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// Auth service endpoints, relative to the configured base URL.
const (
	registerPath = "/auth/register"
	verifyPath   = "/auth/verify_token"
)

// ErrInvalidToken is returned when the auth service rejects a bearer token.
var ErrInvalidToken = errors.New("invalid or expired token")

// ServiceError is returned when the auth service itself misbehaves. Raw
// response bodies are not carried.
type ServiceError struct {
	Status int
	Reason string
}

func (e *ServiceError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("auth service: %s (status %d)", e.Reason, e.Status)
	}
	return fmt.Sprintf("auth service: %s", e.Reason)
}

// Client talks to the auth service.
type Client struct {
	baseURL string
	appName string
	client  *http.Client
}

// NewClient creates an auth service client.
func NewClient(baseURL, appName string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		appName: appName,
		client:  &http.Client{Timeout: timeout},
	}
}

// Registration is the credential set forwarded to the auth service.
type Registration struct {
	Name      string
	Email     string
	Password1 string
	Password2 string
}

// RegisterResult is the identity the auth service issued.
type RegisterResult struct {
	ID          string
	AccessToken string
	TokenType   string
}

type registerPayload struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password1 string `json:"password1"`
	Password2 string `json:"password2"`
	AppName   string `json:"app_name"`
	Role      string `json:"role"`
}

type registerResponse struct {
	ID          string `json:"id"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Register creates user credentials with the auth service and returns the
// issued ID and access token.
func (c *Client) Register(ctx context.Context, reg Registration) (*RegisterResult, error) {
	payload := registerPayload{
		Name:      reg.Name,
		Email:     reg.Email,
		Password1: reg.Password1,
		Password2: reg.Password2,
		AppName:   c.appName,
		Role:      "user",
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal registration: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+registerPath, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ServiceError{Reason: "request failed"}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusCreated || resp.StatusCode == http.StatusOK:
		// fall through
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, &ServiceError{Status: resp.StatusCode, Reason: "registration rejected"}
	default:
		return nil, &ServiceError{Status: resp.StatusCode, Reason: "unexpected status"}
	}

	var regResp registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&regResp); err != nil {
		return nil, &ServiceError{Status: resp.StatusCode, Reason: "undecodable response"}
	}
	if regResp.ID == "" {
		return nil, &ServiceError{Status: resp.StatusCode, Reason: "no user id issued"}
	}

	return &RegisterResult{
		ID:          regResp.ID,
		AccessToken: regResp.AccessToken,
		TokenType:   regResp.TokenType,
	}, nil
}

type verifyResponse struct {
	ID string `json:"id"`
}

// VerifyToken checks a bearer token with the auth service and returns the
// user ID it resolves to. A rejected token yields ErrInvalidToken.
func (c *Client) VerifyToken(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", ErrInvalidToken
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+verifyPath, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &ServiceError{Reason: "request failed"}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through
	case http.StatusUnauthorized, http.StatusForbidden:
		return "", ErrInvalidToken
	default:
		return "", &ServiceError{Status: resp.StatusCode, Reason: "unexpected status"}
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return "", &ServiceError{Status: resp.StatusCode, Reason: "undecodable response"}
	}
	if vr.ID == "" {
		return "", &ServiceError{Status: resp.StatusCode, Reason: "no user id in response"}
	}
	return vr.ID, nil
}

// Verifier is the token check the API middleware depends on.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}
