package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Snapshot mismatch, stale generated file, registration failure
	ExitCommandError = 2 // Invalid flags, unreadable configuration or reference file
)

// Error codes of JSON error envelopes.
const (
	ErrCodeGeneric     = "E001" // Generic/unknown error
	ErrCodeScanFailed  = "E002" // Invalid annotation or unreadable source
	ErrCodeStale       = "E003" // Generated file out of date
	ErrCodeWriteFailed = "E004" // File write error
	ErrCodeNoHistory   = "E005" // History database missing or unreadable
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Errors that are not ExitError come from cobra's flag and argument checks,
// so they map to ExitCommandError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

// RenderError writes err to w behind a red "error:" prefix. Styling is
// dropped when w is not a terminal.
func RenderError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	prefix := r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")).Render("error:")
	fmt.Fprintf(w, "%s %v\n", prefix, err)
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format string
	Writer io.Writer
}

// CLIResponse is the JSON envelope of command output.
type CLIResponse struct {
	Status string    `json:"status"`          // "ok" or "error"
	Data   any       `json:"data,omitempty"`  // success payload
	Error  *CLIError `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Success outputs data in the configured format. Text output uses text.
func (f *OutputFormatter) Success(data any, text func(io.Writer) error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	return text(f.Writer)
}

// Error outputs an error in the configured format.
func (f *OutputFormatter) Error(code, message string) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: code, Message: message},
		})
	}
	_, err := fmt.Fprintf(f.Writer, "Error [%s]: %s\n", code, message)
	return err
}

// outputError emits err as a JSON error envelope on stdout when the format is
// json, and returns err for the exit code. Text output relies on RenderError.
func outputError(formatter *OutputFormatter, code string, err *ExitError) error {
	if formatter.Format == "json" {
		_ = formatter.Error(code, err.Error())
	}
	return err
}
