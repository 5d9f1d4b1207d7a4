//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/ponchorolls/rfcli"
	"github.com/ponchorolls/rfcli/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackend_Integration_ReturnsSummary(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv(gemini.APIKeyEnv)
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := gemini.NewClient(ctx, apiKey)
	require.NoError(t, err)

	excerpt := rfcli.ExtractExcerpt("Internet Protocol\n\nThis document specifies the DoD Standard Internet Protocol.\n", rfcli.DefaultExcerptOptions())

	summary, err := gemini.NewBackend(client).Summarize(ctx, rfcli.SummaryRequest{
		Number: 791,
		Model:  gemini.DefaultModel,
		System: rfcli.SummarySystemPrompt,
		Prompt: rfcli.BuildSummaryPrompt(791, excerpt),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, summary)
}
