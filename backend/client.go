// Package backend is the HTTP client of the DonateHub REST backend. Every
// endpoint has its own response type, failures come back as *Error.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Envelope is the part every backend response shares.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (envelope Envelope) envelope() Envelope {
	return envelope
}

type enveloped interface {
	envelope() Envelope
}

// Client calls the backend. Calls are independent of each other, there is
// no retry and no deduplication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client for the backend at baseURL. A nil httpClient uses
// http.DefaultClient.
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

func (client *Client) BaseURL() string {
	return client.baseURL
}

func (client *Client) getJSON(ctx context.Context, path string, out enveloped) error {
	return client.send(ctx, http.MethodGet, path, nil, "", out)
}

func (client *Client) sendJSON(ctx context.Context, method, path string, payload any, out enveloped) error {
	op := method + " " + path
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: fmt.Errorf("cant encode request: %w", err)}
	}
	return client.send(ctx, method, path, bytes.NewReader(rawPayload), "application/json", out)
}

func (client *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string, out enveloped) error {
	op := method + " " + path

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	request.Header.Set("Accept", "application/json")
	if contentType != "" {
		request.Header.Set("Content-Type", contentType)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		client.logger.Warn("backend unreachable", zap.String("op", op), zap.Error(err))
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	defer response.Body.Close()

	if errDecode := json.NewDecoder(response.Body).Decode(out); errDecode != nil {
		client.logger.Warn("backend answer unreadable",
			zap.String("op", op),
			zap.Int("status", response.StatusCode),
			zap.Error(errDecode))
		return &Error{
			Kind: KindTransport,
			Op:   op,
			Err:  fmt.Errorf("status %d: cant parse response: %w", response.StatusCode, errDecode),
		}
	}

	envelope := out.envelope()
	if !envelope.Success || response.StatusCode >= http.StatusBadRequest {
		client.logger.Debug("backend rejected call",
			zap.String("op", op),
			zap.Int("status", response.StatusCode),
			zap.String("message", envelope.Message))
		return &Error{Kind: KindRejected, Op: op, Message: envelope.Message}
	}

	return nil
}

func escape(segment string) string {
	return url.PathEscape(segment)
}
