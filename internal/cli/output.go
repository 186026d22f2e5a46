package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// OutputFormatter writes command results as JSON envelopes, bare ids (quiet)
// or plain text
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	// Writer receives results; nil means stdout
	Writer io.Writer
}

func (f *OutputFormatter) out() io.Writer {
	if f.Writer != nil {
		return f.Writer
	}
	return os.Stdout
}

func (f *OutputFormatter) encode(success bool, fields map[string]any) error {
	payload := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		payload[k] = v
	}
	payload["success"] = success
	return json.NewEncoder(f.out()).Encode(payload)
}

// Result writes {"success": true, ...fields}. Commands call it from their JSON branch.
func (f *OutputFormatter) Result(fields map[string]any) error {
	return f.encode(true, fields)
}

// Success prints data: its id when quiet, a {"success","data"} envelope for JSON
func (f *OutputFormatter) Success(data any) error {
	if f.Quiet {
		if withID, ok := data.(interface{ GetID() int }); ok {
			_, err := fmt.Fprintf(f.out(), "%d\n", withID.GetID())
			return err
		}
	}
	if f.JSON {
		return f.Result(map[string]any{"data": data})
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Error reports a failure without a suggestion
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion reports a failure. Human output goes to stderr.
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		detail := map[string]any{"code": code, "message": message}
		if suggestion != "" {
			detail["suggestion"] = suggestion
		}
		return f.encode(false, map[string]any{"error": detail})
	}

	fmt.Fprintf(os.Stderr, "❌ Error: %s\n", message)
	if suggestion != "" {
		fmt.Fprintf(os.Stderr, "💡 Suggestion: %s\n", suggestion)
	}
	return nil
}

// Fail reports err in the active output mode and returns it as a CodedError
// carrying the matching exit code
func (f *OutputFormatter) Fail(err error) error {
	code, exit, suggestion := Classify(err)
	if fmtErr := f.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CodedError{Code: exit, Err: err}
}
