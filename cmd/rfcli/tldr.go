package main

import (
	"context"
	"fmt"

	"github.com/ponchorolls/rfcli"
	"github.com/ponchorolls/rfcli/gemini"
	"github.com/ponchorolls/rfcli/lipgloss"
	"github.com/ponchorolls/rfcli/ollama"
	"github.com/ponchorolls/rfcli/openai"
	"github.com/ponchorolls/rfcli/reader"
)

// Run executes the tldr command.
func (c *TldrCmd) Run(deps *Dependencies) error {
	var number int
	if c.Number != nil {
		number = *c.Number
		if number <= 0 {
			err := rfcli.Errorf(rfcli.EINVALID, "invalid RFC number %d", number)
			fmt.Fprintf(deps.Stderr, "error: %s\n", rfcli.ErrorMessage(err))
			return err
		}
	} else {
		selector := &reader.Selector{Index: deps.Index, Picker: deps.Picker}
		sel, err := selector.Select(deps.Ctx, false, "")
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rfcli.ErrorMessage(err))
			return err
		}
		if sel.Kind != rfcli.SelectionChosen {
			fmt.Fprintln(deps.Stdout, "No RFC selected. Exiting...")
			return nil
		}
		number = sel.Number
	}

	raw, err := deps.Documents.Document(deps.Ctx, number)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: fetching RFC %d: %s\n", number, rfcli.ErrorMessage(err))
		return err
	}

	summarizer := &reader.Summarizer{Backend: deps.Backend, Model: c.model()}

	var summary string
	err = deps.Spinner.Run(deps.Ctx, fmt.Sprintf("Querying %s...", deps.Backend.Name()), func(ctx context.Context) error {
		var err error
		summary, err = summarizer.Summarize(ctx, number, rfcli.Normalize(raw))
		return err
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rfcli.ErrorMessage(err))
		if detail := rfcli.ErrorDetail(err); detail != "" && rfcli.ErrorCode(err) == rfcli.EMALFORMED {
			fmt.Fprintf(deps.Stderr, "Debug: %s\n", detail)
		}
		return err
	}

	fmt.Fprint(deps.Stdout, lipgloss.RenderSummary(number, summary, deps.Width))
	return nil
}

// model returns the model flag or the backend's default model.
func (c *TldrCmd) model() string {
	if c.Model != "" {
		return c.Model
	}
	return defaultModel(c.Backend)
}

func defaultModel(backend string) string {
	switch backend {
	case "ollama":
		return ollama.DefaultModel
	case "gemini":
		return gemini.DefaultModel
	default:
		return openai.GroqDefaultModel
	}
}
