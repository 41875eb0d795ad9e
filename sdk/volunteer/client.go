// Package volunteer is the Go client for the VolunteerHub coordination API.
//
// The client owns the session: Login stores the bearer token, any 401 from
// the server tears the session down and notifies the OnSessionExpired hook.
// Mutations never patch local state from the request payload; the caller
// always receives the server's authoritative snapshot.
package volunteer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"volunteerhub/internal/shared/id"
)

// Client is the coordination API client.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu          sync.RWMutex
	token       string
	currentUser *User

	inflightMu sync.Mutex
	inflight   map[string]string

	onSessionExpired func()
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(client *Client) {
		client.httpClient = c
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		client.httpClient.Timeout = d
	}
}

// WithSessionExpiredHook registers a callback invoked whenever the server
// rejects the session token. The client has already cleared its session
// state by the time the hook runs.
func WithSessionExpiredHook(fn func()) Option {
	return func(client *Client) {
		client.onSessionExpired = fn
	}
}

// NewClient creates a new coordination API client.
//
// baseURL is the API root (e.g. "http://localhost:4000").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		inflight: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// beginOperation registers a mutation key under a fresh request id and
// returns that id plus a release func. The last return is false when an
// identical mutation is already in flight; callers must not issue the
// request in that case.
func (c *Client) beginOperation(key string) (string, func(), bool) {
	c.inflightMu.Lock()
	defer c.inflightMu.Unlock()

	if _, busy := c.inflight[key]; busy {
		return "", nil, false
	}

	reqID := id.MustGenerate(12)
	c.inflight[key] = reqID

	release := func() {
		c.inflightMu.Lock()
		defer c.inflightMu.Unlock()
		if c.inflight[key] == reqID {
			delete(c.inflight, key)
		}
	}
	return reqID, release, true
}

// operationCurrent reports whether reqID is still the request on record
// for key. Logout and session expiry supersede every pending id, so a
// mutation completing afterwards must discard its result instead of
// surfacing it to whatever view is mounted now.
func (c *Client) operationCurrent(key, reqID string) bool {
	c.inflightMu.Lock()
	defer c.inflightMu.Unlock()
	return c.inflight[key] == reqID
}

// discardPending invalidates every in-flight request id.
func (c *Client) discardPending() {
	c.inflightMu.Lock()
	defer c.inflightMu.Unlock()
	clear(c.inflight)
}

// doRequest performs an HTTP request and decodes the enveloped response.
// A 401 invalidates the session before the error is returned.
func (c *Client) doRequest(ctx context.Context, method, path string, body any, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Kind: ErrKindNetwork, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{Kind: ErrKindNetwork, Message: err.Error()}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.expireSession()
		return &APIError{
			Kind:    ErrKindUnauthorized,
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, "session expired"),
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Kind:    kindForStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: errorMessage(respBody, http.StatusText(resp.StatusCode)),
		}
	}

	if result == nil {
		return nil
	}

	var envelope apiResponse
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	if !envelope.Success {
		return &APIError{Kind: ErrKindServer, Status: resp.StatusCode, Message: envelope.Message}
	}
	if envelope.Data == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	return nil
}

func kindForStatus(status int) ErrorKind {
	switch status {
	case http.StatusBadRequest:
		return ErrKindValidation
	case http.StatusForbidden:
		return ErrKindForbidden
	case http.StatusNotFound:
		return ErrKindNotFound
	case http.StatusConflict:
		return ErrKindConflict
	default:
		return ErrKindServer
	}
}

// errorMessage extracts the server's error message from an enveloped body,
// falling back when the body is not an envelope.
func errorMessage(body []byte, fallback string) string {
	var envelope apiResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil && envelope.Error.Message != "" {
		return envelope.Error.Message
	}
	return fallback
}
