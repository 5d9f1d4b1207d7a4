// Package gemini provides an rfcli.SummaryBackend using Google Gemini.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/ponchorolls/rfcli"
	"google.golang.org/genai"
)

// Defaults for the Gemini API.
const (
	DefaultModel = "gemini-2.5-flash"
	APIKeyEnv    = "GEMINI_API_KEY"
)

// Ensure Backend implements rfcli.SummaryBackend at compile time.
var _ rfcli.SummaryBackend = (*Backend)(nil)

// Backend implements rfcli.SummaryBackend using Google Gemini.
type Backend struct {
	client *genai.Client
}

// NewBackend creates a new Backend.
func NewBackend(client *genai.Client) *Backend {
	return &Backend{client: client}
}

// NewClient creates a Gemini API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	if apiKey == "" {
		return nil, rfcli.Errorf(rfcli.EUNAUTHORIZED, "%s not set", APIKeyEnv)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, rfcli.WrapError(rfcli.EUNAVAILABLE, err, "create gemini client")
	}
	return client, nil
}

// Name returns "gemini".
func (b *Backend) Name() string {
	return "gemini"
}

// Summarize sends one GenerateContent request.
func (b *Backend) Summarize(ctx context.Context, req rfcli.SummaryRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	if b.client == nil {
		return "", rfcli.Errorf(rfcli.EINTERNAL, "gemini client not configured")
	}

	result, err := b.client.Models.GenerateContent(ctx, req.Model,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: req.Prompt}},
		}},
		BuildConfig(req.System),
	)
	if err != nil {
		return "", requestError(err)
	}
	if result == nil {
		return "", rfcli.Errorf(rfcli.EMALFORMED, "gemini returned nil result")
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		raw, _ := json.Marshal(result)
		return "", &rfcli.Error{Code: rfcli.EMALFORMED, Message: "API response did not contain a summary", Detail: string(raw)}
	}
	return text, nil
}

// requestError maps a GenerateContent failure to an application error.
// A rejected API key is EUNAUTHORIZED; everything else is EUNAVAILABLE.
func requestError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		code := rfcli.EUNAVAILABLE
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			code = rfcli.EUNAUTHORIZED
		}
		return &rfcli.Error{
			Code:    code,
			Message: fmt.Sprintf("gemini returned HTTP %d: %s", apiErr.Code, apiErr.Message),
			Err:     err,
		}
	}
	return rfcli.WrapError(rfcli.EUNAVAILABLE, err, "gemini request failed")
}

// BuildConfig returns the GenerateContentConfig for a summary request.
func BuildConfig(system string) *genai.GenerateContentConfig {
	temp := float32(0.3)
	cfg := &genai.GenerateContentConfig{
		Temperature: &temp,
	}
	if system != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: system}},
		}
	}
	return cfg
}
