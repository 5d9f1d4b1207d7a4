package main

import (
	"context"
	"io"
	"time"

	"github.com/ponchorolls/rfcli"
)

// Spinner shows progress while fn runs.
type Spinner interface {
	Run(ctx context.Context, message string, fn func(context.Context) error) error
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Index      rfcli.IndexService
	Documents  rfcli.DocumentService
	Picker     rfcli.Picker
	Pager      rfcli.Pager
	Backend    rfcli.SummaryBackend
	Spinner    Spinner
	RetryDelay time.Duration
	Width      int
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	CacheDir string  `name:"cache-dir" env:"RFCLI_CACHE_DIR" type:"path" help:"Directory for the RFC index and documents (default: user cache dir)"`
	BaseURL  string  `name:"base-url" env:"RFCLI_BASE_URL" default:"https://www.rfc-editor.org" help:"RFC host"`
	LogFile  string  `name:"log-file" env:"RFCLI_LOG_FILE" type:"path" help:"Write debug logs to this file"`
	Rate     float64 `default:"2" help:"Requests per second to the RFC host (0 disables limiting)"`

	Read ReadCmd `cmd:"" help:"Search and read an RFC"`
	Tldr TldrCmd `cmd:"" help:"Get a summarized TLDR of an RFC"`
}

// ReadCmd is the "read" subcommand.
type ReadCmd struct {
	Refresh bool   `short:"r" help:"Force update the local RFC index"`
	Query   string `short:"q" help:"Initial search query"`
}

// TldrCmd is the "tldr" subcommand.
type TldrCmd struct {
	Number  *int   `arg:"" optional:"" help:"RFC number (omit to search)"`
	Model   string `short:"m" help:"Model name (default depends on backend)"`
	Backend string `enum:"groq,ollama,gemini" default:"groq" env:"RFCLI_BACKEND" help:"Summary backend: groq, ollama or gemini"`
}
