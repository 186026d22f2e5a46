package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CaptureOutput returns everything fn writes to os.Stdout.
// Stdout is restored even if fn fails the test.
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err, "stdout pipe")

	saved := os.Stdout
	os.Stdout = w
	restore := func() { os.Stdout = saved }
	t.Cleanup(restore)

	done := make(chan string, 1)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		_ = r.Close()
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	restore()
	return <-done
}

// ExecuteCommand runs cmd with args and returns its stdout and error
func ExecuteCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SilenceUsage, cmd.SilenceErrors = true, true

	var runErr error
	out := CaptureOutput(t, func() { runErr = cmd.Execute() })
	return out, runErr
}

// ParseJSON decodes one JSON envelope printed by a command
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var envelope map[string]interface{}
	require.NoErrorf(t, json.Unmarshal([]byte(output), &envelope), "output was not JSON:\n%s", output)
	return envelope
}
