// Package exec provides an rfcli.Pager that pipes text to an external
// pager program.
package exec

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ponchorolls/rfcli"
)

// Ensure Pager implements rfcli.Pager at compile time.
var _ rfcli.Pager = (*Pager)(nil)

// Pager runs an external pager with the text on its standard input.
type Pager struct {
	command []string
	stdout  io.Writer
	stderr  io.Writer
}

// Option configures a Pager.
type Option func(*Pager)

// WithCommand sets the pager command line, overriding detection.
func WithCommand(command ...string) Option {
	return func(p *Pager) {
		p.command = command
	}
}

// WithOutput sets where the pager writes. Defaults to the process stdout and stderr.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(p *Pager) {
		p.stdout = stdout
		p.stderr = stderr
	}
}

// NewPager creates a Pager. Without WithCommand it uses bat with man-page
// highlighting when bat is on PATH, and less otherwise.
func NewPager(opts ...Option) *Pager {
	p := &Pager{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(p)
	}
	if len(p.command) == 0 {
		p.command = DetectCommand(exec.LookPath)
	}
	return p
}

// DetectCommand returns the preferred pager command line given a PATH lookup.
func DetectCommand(lookPath func(file string) (string, error)) []string {
	if _, err := lookPath("bat"); err == nil {
		return []string{"bat", "-l", "man", "-p", "--pager", "less -FK"}
	}
	return []string{"less", "-FK"}
}

// ParseCommand splits a pager command line on whitespace.
func ParseCommand(s string) []string {
	return strings.Fields(s)
}

// Command returns the pager command line.
func (p *Pager) Command() []string {
	return p.command
}

// Page pipes text to the pager and waits for it to exit. The pager's exit
// status is ignored; only a failure to start it is returned.
func (p *Pager) Page(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, p.command[0], p.command[1:]...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = p.stdout
	cmd.Stderr = p.stderr

	if err := cmd.Start(); err != nil {
		return rfcli.WrapError(rfcli.EINTERNAL, err, "start pager %q", p.command[0])
	}

	_ = cmd.Wait()
	return nil
}
