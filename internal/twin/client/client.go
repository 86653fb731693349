package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/longkey1/twin/internal/twin"
)

const (
	DefaultBaseURL = "http://localhost:8000"
	ChatPath       = "/chat"
)

// ErrTransport is wrapped by every error returned from Send.
var ErrTransport = errors.New("chat transport failure")

// ChatRequest represents the request body for the chat endpoint
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

// ChatResponse represents a successful reply from the chat endpoint
type ChatResponse struct {
	SessionID string          `json:"session_id"`
	Response  string          `json:"response"`
	UIAction  *twin.RawAction `json:"ui_action,omitempty"`
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: status %d: %s", e.StatusCode, body)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}

// Client talks to the twin backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Send posts one chat turn and returns the decoded reply.
func (c *Client) Send(ctx context.Context, chatReq ChatRequest) (*ChatResponse, error) {
	jsonData, err := sonic.Marshal(chatReq)
	if err != nil {
		return nil, fmt.Errorf("%w: error marshaling request: %v", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ChatPath, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("%w: error creating request: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: error sending request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: error reading response: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var result *ChatResponse
	if err := sonic.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("%w: error parsing response: %v", ErrTransport, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%w: empty response body", ErrTransport)
	}

	return result, nil
}
