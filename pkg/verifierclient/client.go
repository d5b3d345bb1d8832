// Package verifierclient calls a running payment verifier over HTTP.
package verifierclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// CorrelationIDHeader carries the caller's trace token to the verifier
const CorrelationIDHeader = "X-Correlation-ID"

// DefaultTimeout bounds a single call when no http.Client is supplied
const DefaultTimeout = 10 * time.Second

// PaymentContext is the signed payment intent
type PaymentContext struct {
	Recipient string  `json:"recipient"`
	Token     string  `json:"token"`
	Amount    string  `json:"amount"`
	Nonce     string  `json:"nonce"`
	ChainID   uint64  `json:"chainId"`
	Timestamp *uint64 `json:"timestamp,omitempty"`
}

// VerifyRequest is the body of POST /verify
type VerifyRequest struct {
	Context   PaymentContext `json:"context"`
	Signature string         `json:"signature"`
}

// VerifyResponse is the verifier's result
type VerifyResponse struct {
	IsValid          bool    `json:"isValid"`
	RecoveredAddress *string `json:"recoveredAddress"`
	Error            *string `json:"error"`
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

// StatusError is returned when the verifier answers with anything but 200.
// Message holds the verifier's error text when the body could be decoded,
// otherwise the raw body.
type StatusError struct {
	StatusCode    int
	Message       string
	CorrelationID string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("verifier returned status %d: %s", e.StatusCode, e.Message)
}

// Client handles communication with the verifier service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates a client for the verifier at baseURL, e.g. http://127.0.0.1:3002
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Verify submits a signed payment via POST /verify.
//
// A policy rejection (expired, future, unrecoverable) is a normal result with
// IsValid false and a nil error. For 400 and 413 the decoded response is
// returned together with a *StatusError.
func (c *Client) Verify(ctx context.Context, req *VerifyRequest, correlationID string) (*VerifyResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal verify request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/verify", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create verify request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if correlationID != "" {
		httpReq.Header.Set(CorrelationIDHeader, correlationID)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call verifier verify endpoint: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read verify response: %w", err)
	}

	var verifyResp VerifyResponse
	decodeErr := json.Unmarshal(bodyBytes, &verifyResp)

	switch resp.StatusCode {
	case http.StatusOK:
		if decodeErr != nil {
			return nil, fmt.Errorf("failed to decode verify response: %w", decodeErr)
		}
		return &verifyResp, nil
	case http.StatusBadRequest, http.StatusRequestEntityTooLarge:
		if decodeErr == nil && verifyResp.Error != nil {
			return &verifyResp, newStatusError(resp, *verifyResp.Error)
		}
	}

	return nil, newStatusError(resp, strings.TrimSpace(string(bodyBytes)))
}

// Health fetches GET /health
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create health request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call verifier health endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, newStatusError(resp, strings.TrimSpace(string(bodyBytes)))
	}

	var healthResp HealthResponse
	if err := json.NewDecoder(resp.Body).Decode(&healthResp); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}

	return &healthResp, nil
}

func newStatusError(resp *http.Response, message string) *StatusError {
	return &StatusError{
		StatusCode:    resp.StatusCode,
		Message:       message,
		CorrelationID: resp.Header.Get(CorrelationIDHeader),
	}
}
