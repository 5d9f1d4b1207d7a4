// Package openai provides an rfcli.SummaryBackend for hosted
// OpenAI-compatible chat completion APIs such as Groq.
package openai

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

// Groq defaults.
const (
	GroqBaseURL      = "https://api.groq.com/openai/v1"
	GroqAPIKeyEnv    = "GROQ_API_KEY"
	GroqDefaultModel = "llama-3.1-8b-instant"
)

// Ensure Backend implements rfcli.SummaryBackend at compile time.
var _ rfcli.SummaryBackend = (*Backend)(nil)

// Backend calls the chat completions endpoint of an OpenAI-compatible API.
type Backend struct {
	client  *http.Client
	baseURL string
	apiKey  string
	name    string
}

// Option configures a Backend.
type Option func(*Backend)

// WithBaseURL sets the API base URL, e.g. "https://api.openai.com/v1".
func WithBaseURL(baseURL string) Option {
	return func(b *Backend) {
		b.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithClient replaces the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(b *Backend) {
		b.client = c
	}
}

// WithName sets the name reported by Name.
func WithName(name string) Option {
	return func(b *Backend) {
		b.name = name
	}
}

// NewBackend creates a Backend authenticating with the bearer token apiKey.
// It targets Groq unless WithBaseURL is given.
func NewBackend(apiKey string, opts ...Option) *Backend {
	b := &Backend{
		client:  http.DefaultClient,
		baseURL: GroqBaseURL,
		apiKey:  apiKey,
		name:    "groq",
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return b.name
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// BuildRequest returns the chat completion request body for req.
func BuildRequest(req rfcli.SummaryRequest) ([]byte, error) {
	return json.Marshal(chatRequest{
		Model: req.Model,
		Messages: []message{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.Prompt},
		},
	})
}

// Summarize sends a single chat completion request.
func (b *Backend) Summarize(ctx context.Context, req rfcli.SummaryRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if b.apiKey == "" {
		return "", rfcli.Errorf(rfcli.EUNAUTHORIZED, "%s API key not set", b.name)
	}

	body, err := BuildRequest(req)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EINTERNAL, err, "encode request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", rfcli.WrapError(rfcli.EINVALID, err, "build request")
	}
	httpReq.Header.Set("Authorization", "Bearer "+b.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.client.Do(httpReq)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "%s request failed", b.name)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", rfcli.WrapError(rfcli.EUNAVAILABLE, err, "read %s response", b.name)
	}

	if resp.StatusCode != http.StatusOK {
		return "", statusError(b.name, resp.StatusCode, raw)
	}

	var out chatResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &rfcli.Error{Code: rfcli.EMALFORMED, Message: b.name + " response is not valid JSON", Detail: string(raw), Err: err}
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", &rfcli.Error{Code: rfcli.EMALFORMED, Message: "API response did not contain a summary", Detail: string(raw)}
	}

	return out.Choices[0].Message.Content, nil
}

// statusError maps a non-success response to an application error.
func statusError(name string, status int, raw []byte) error {
	code := rfcli.EUNAVAILABLE
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		code = rfcli.EUNAUTHORIZED
	}

	msg := http.StatusText(status)
	var er errorResponse
	if json.Unmarshal(raw, &er) == nil && er.Error.Message != "" {
		msg = er.Error.Message
	}

	return &rfcli.Error{
		Code:    code,
		Message: fmt.Sprintf("%s returned HTTP %d: %s", name, status, msg),
		Detail:  string(raw),
	}
}
