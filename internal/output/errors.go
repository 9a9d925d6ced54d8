package output

import "errors"

// Exit codes following sysexits.h convention
const (
	ExitOK          = 0  // Success
	ExitGeneral     = 1  // General error
	ExitUsage       = 2  // Invalid usage / bad arguments
	ExitNotFound    = 4  // No token stored for the account
	ExitConfigError = 10 // Configuration error
	ExitStorage     = 12 // Secure storage reported an unhandled status
	ExitDataFormat  = 13 // Stored value could not be decoded
)

// CLIError represents a structured error with exit code and optional hint
type CLIError struct {
	ExitCode int
	Message  string
	Hint     string
}

// Error implements the error interface
func (e *CLIError) Error() string {
	return e.Message
}

// NewCLIError creates a new CLIError
func NewCLIError(code int, msg string) *CLIError {
	return &CLIError{
		ExitCode: code,
		Message:  msg,
	}
}

// WithHint adds a user-facing hint to the error
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// Report prints err and its hint through the formatter and returns the exit code to use
func Report(formatter Formatter, err error) int {
	formatter.PrintError(err)

	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Hint != "" {
			formatter.PrintHint(cliErr.Hint)
		}
		return cliErr.ExitCode
	}

	return ExitGeneral
}
