// Package ollama provides an rfcli.SummaryBackend for a local Ollama server.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ponchorolls/rfcli"
)

// Defaults for a local Ollama install.
const (
	DefaultEndpoint = "http://localhost:11434"
	EndpointEnv     = "OLLAMA_HOST"
	DefaultModel    = "llama3.1"
)

// Ensure Backend implements rfcli.SummaryBackend at compile time.
var _ rfcli.SummaryBackend = (*Backend)(nil)

// Backend calls the Ollama chat endpoint without streaming.
type Backend struct {
	client   *http.Client
	endpoint string
}

// Option configures a Backend.
type Option func(*Backend)

// WithClient replaces the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(b *Backend) {
		b.client = c
	}
}

// NewBackend creates a Backend for the Ollama server at endpoint.
// An empty endpoint uses DefaultEndpoint.
func NewBackend(endpoint string, opts ...Option) *Backend {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	b := &Backend{
		client:   http.DefaultClient,
		endpoint: strings.TrimSuffix(endpoint, "/"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns "ollama".
func (b *Backend) Name() string {
	return "ollama"
}

// Endpoint returns the server base URL.
func (b *Backend) Endpoint() string {
	return b.endpoint
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
	Stream   bool      `json:"stream"`
}

type chatResponse struct {
	Message *message `json:"message"`
	Error   string   `json:"error"`
}

// Summarize sends a single non-streaming chat request.
func (b *Backend) Summarize(ctx context.Context, req rfcli.SummaryRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	body, err := json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
	})
	if err != nil {
		return "", rfcli.WrapError(rfcli.EINTERNAL, err, "encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", rfcli.WrapError(rfcli.EINVALID, err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "ollama request failed (is it running at %s?)", b.endpoint)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "read ollama response")
	}

	var out chatResponse
	jsonErr := json.Unmarshal(raw, &out)

	if resp.StatusCode != http.StatusOK {
		code := rfcli.ENOTFOUND
		if resp.StatusCode != http.StatusNotFound {
			code = rfcli.EUNAVAILABLE
		}
		msg := http.StatusText(resp.StatusCode)
		if jsonErr == nil && out.Error != "" {
			msg = out.Error
		}
		return "", &rfcli.Error{
			Code:    code,
			Message: fmt.Sprintf("ollama returned HTTP %d: %s", resp.StatusCode, msg),
			Detail:  string(raw),
		}
	}

	if jsonErr != nil {
		return "", &rfcli.Error{Code: rfcli.EMALFORMED, Message: "ollama response is not valid JSON", Detail: string(raw), Err: jsonErr}
	}
	if out.Message == nil || out.Message.Content == "" {
		return "", &rfcli.Error{Code: rfcli.EMALFORMED, Message: "API response did not contain a summary", Detail: string(raw)}
	}

	return out.Message.Content, nil
}
