package exec_test

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"testing"

	"github.com/ponchorolls/rfcli"
	"github.com/ponchorolls/rfcli/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectCommand(t *testing.T) {
	t.Parallel()

	t.Run("prefers bat", func(t *testing.T) {
		t.Parallel()

		cmd := exec.DetectCommand(func(file string) (string, error) {
			return "/usr/bin/" + file, nil
		})

		assert.Equal(t, []string{"bat", "-l", "man", "-p", "--pager", "less -FK"}, cmd)
	})

	t.Run("falls back to less", func(t *testing.T) {
		t.Parallel()

		cmd := exec.DetectCommand(func(string) (string, error) {
			return "", errors.New("not found")
		})

		assert.Equal(t, []string{"less", "-FK"}, cmd)
	})
}

func TestParseCommand(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"most", "-s"}, exec.ParseCommand("  most   -s "))
	assert.Empty(t, exec.ParseCommand(""))
}

func TestNewPager_Command(t *testing.T) {
	t.Parallel()

	t.Run("override from environment string", func(t *testing.T) {
		t.Parallel()

		pager := exec.NewPager(exec.WithCommand(exec.ParseCommand("most -s")...))

		assert.Equal(t, []string{"most", "-s"}, pager.Command())
	})

	t.Run("empty override falls back to detection", func(t *testing.T) {
		t.Parallel()

		pager := exec.NewPager(exec.WithCommand(exec.ParseCommand("")...))

		cmd := pager.Command()
		require.NotEmpty(t, cmd)
		assert.Contains(t, []string{"bat", "less"}, cmd[0])
	})
}

func TestPager_Page(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("requires POSIX cat and false")
	}

	t.Run("pipes text to the pager", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		pager := exec.NewPager(exec.WithCommand("cat"), exec.WithOutput(&stdout, &stderr))

		err := pager.Page(context.Background(), "INTERNET PROTOCOL\n")

		require.NoError(t, err)
		assert.Equal(t, "INTERNET PROTOCOL\n", stdout.String())
	})

	t.Run("ignores pager exit status", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer
		pager := exec.NewPager(exec.WithCommand("false"), exec.WithOutput(&stdout, &stderr))

		assert.NoError(t, pager.Page(context.Background(), "text"))
	})

	t.Run("reports a pager that cannot start", func(t *testing.T) {
		t.Parallel()

		pager := exec.NewPager(exec.WithCommand("rfcli-no-such-pager"))

		err := pager.Page(context.Background(), "text")

		require.Error(t, err)
		assert.Contains(t, rfcli.ErrorMessage(err), "rfcli-no-such-pager")
	})
}
