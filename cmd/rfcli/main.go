package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/ponchorolls/rfcli"
	"github.com/ponchorolls/rfcli/bubbletea"
	rfexec "github.com/ponchorolls/rfcli/exec"
	"github.com/ponchorolls/rfcli/fs"
	"github.com/ponchorolls/rfcli/gemini"
	rfhttp "github.com/ponchorolls/rfcli/http"
	"github.com/ponchorolls/rfcli/lipgloss"
	"github.com/ponchorolls/rfcli/ollama"
	"github.com/ponchorolls/rfcli/openai"
	"github.com/ponchorolls/rfcli/reader"
	rfslog "github.com/ponchorolls/rfcli/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// Application errors have already been reported by the command.
		var e *rfcli.Error
		if !errors.As(err, &e) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// PagerEnv overrides the detected pager command line.
const PagerEnv = "RFCLI_PAGER"

// Main represents the program.
type Main struct {
	// Cache locations. Resolved from --cache-dir or the user cache
	// directory when zero.
	Locations rfcli.CacheLocations

	// Services for end-to-end testing. Nil services are wired in Run.
	Fetcher   rfcli.Fetcher
	Index     rfcli.IndexService
	Documents rfcli.DocumentService
	Picker    rfcli.Picker
	Pager     rfcli.Pager
	Backend   rfcli.SummaryBackend
	Spinner   Spinner

	// RetryDelay is the pause after a failed read step.
	RetryDelay time.Duration

	// Getenv looks up credentials and endpoints.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		RetryDelay: reader.DefaultRetryDelay,
		Getenv:     os.Getenv,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		RetryDelay: m.RetryDelay,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rfcli"),
		kong.Description("A fast RFC reader with fuzzy search and TLDR"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rfcli --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cli.LogFile)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", rfcli.ErrorMessage(err))
		return err
	}
	defer closeLog()

	closeFetcher, err := m.wireStorage(cli, logger, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", rfcli.ErrorMessage(err))
		if rfcli.ErrorCode(err) == rfcli.ECACHE {
			fmt.Fprintln(stderr, "Hint: Set RFCLI_CACHE_DIR or --cache-dir to use a different cache directory")
		}
		return err
	}
	defer closeFetcher()

	if m.Picker == nil {
		m.Picker = bubbletea.NewPicker(bubbletea.WithOutput(stderr))
	}
	if m.Pager == nil {
		var opts []rfexec.Option
		if command := rfexec.ParseCommand(m.Getenv(PagerEnv)); len(command) > 0 {
			opts = append(opts, rfexec.WithCommand(command...))
		}
		m.Pager = rfslog.NewLoggingPager(rfexec.NewPager(opts...), logger)
	}

	deps.Index = m.Index
	deps.Documents = m.Documents
	deps.Picker = m.Picker
	deps.Pager = m.Pager

	if strings.HasPrefix(kongCtx.Command(), "tldr") {
		if m.Backend == nil {
			backend, err := m.newBackend(ctx, cli.Tldr.Backend, stderr)
			if err != nil {
				fmt.Fprintf(stderr, "error: %s\n", rfcli.ErrorMessage(err))
				return err
			}
			m.Backend = rfslog.NewLoggingSummaryBackend(backend, logger)
		}
		if m.Spinner == nil {
			m.Spinner = bubbletea.NewSpinner(stderr)
		}
		deps.Backend = m.Backend
		deps.Spinner = m.Spinner
		deps.Width = lipgloss.TerminalWidth(stdout)
	}

	return kongCtx.Run(deps)
}

// wireStorage builds the fetcher and caches that were not injected.
// The returned func closes a fetcher created here.
func (m *Main) wireStorage(cli *CLI, logger *slog.Logger, stdout io.Writer) (func(), error) {
	noop := func() {}
	if m.Index != nil && m.Documents != nil {
		return noop, nil
	}

	locs := m.Locations
	if cli.CacheDir != "" {
		locs = rfcli.NewCacheLocations(cli.CacheDir)
	} else if locs == (rfcli.CacheLocations{}) {
		var err error
		if locs, err = rfcli.DefaultCacheLocations(); err != nil {
			return noop, err
		}
	}
	if err := locs.Validate(); err != nil {
		return noop, err
	}

	fetcher, closeFetcher := m.Fetcher, noop
	if fetcher == nil {
		f := rfhttp.NewFetcher(rfhttp.WithRateLimit(cli.Rate))
		fetcher, closeFetcher = f, func() { _ = f.Close() }
	}
	fetcher = rfslog.NewLoggingFetcher(fetcher, logger)
	opts := []fs.Option{fs.WithBaseURL(cli.BaseURL), fs.WithLogger(logger)}

	if m.Index == nil {
		index := fs.NewIndexCache(locs, fetcher, opts...)
		index.OnRefresh = func() { fmt.Fprintln(stdout, "Updating RFC index from IETF...") }
		index.OnRefreshed = func() { fmt.Fprintln(stdout, "Index updated successfully.") }
		m.Index = rfslog.NewLoggingIndexService(index, logger)
	}
	if m.Documents == nil {
		m.Documents = rfslog.NewLoggingDocumentService(fs.NewDocumentCache(locs, fetcher, opts...), logger)
	}
	return closeFetcher, nil
}

// newBackend creates the named summary backend from environment credentials.
func (m *Main) newBackend(ctx context.Context, name string, stderr io.Writer) (rfcli.SummaryBackend, error) {
	switch name {
	case "ollama":
		return ollama.NewBackend(m.Getenv(ollama.EndpointEnv)), nil
	case "gemini":
		client, err := gemini.NewClient(ctx, m.Getenv(gemini.APIKeyEnv))
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://aistudio.google.com/apikey")
			return nil, err
		}
		return gemini.NewBackend(client), nil
	default:
		key := m.Getenv(openai.GroqAPIKeyEnv)
		if key == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://console.groq.com/keys")
			return nil, rfcli.Errorf(rfcli.EUNAUTHORIZED, "%s not set", openai.GroqAPIKeyEnv)
		}
		return openai.NewBackend(key), nil
	}
}

// openLogger returns a debug logger writing to path, or a discarding
// logger when path is empty.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, rfcli.WrapError(rfcli.EINVALID, err, "open log file")
	}
	handler := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
		Formatter:       log.LogfmtFormatter,
		Prefix:          "rfcli",
	})
	logger := slog.New(handler)
	return logger, func() { _ = f.Close() }, nil
}
