package output

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // missing entries directory, no entries, bad arguments
	ExitSystemError = 2 // I/O failure while reading entries or writing pages
	ExitConflict    = 3 // entry file already exists
)

// ExitError is an error that carries the process exit code. Commands print
// it themselves, so main only maps it to the code.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string { return e.Message }

// Unwrap exposes Cause to errors.Is and errors.As.
func (e *ExitError) Unwrap() error { return e.Cause }

// NewUserError reports a condition the user can fix.
func NewUserError(message string) *ExitError {
	return &ExitError{Code: ExitUserError, Message: message}
}

// NewSystemError reports an I/O failure.
func NewSystemError(message string) *ExitError {
	return &ExitError{Code: ExitSystemError, Message: message}
}

// NewSystemErrorWithCause is NewSystemError with cause appended to the
// message as "message: cause".
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	if cause == nil {
		return NewSystemError(message)
	}
	return &ExitError{Code: ExitSystemError, Message: message + ": " + cause.Error(), Cause: cause}
}

// NewConflictError reports a refusal to overwrite an existing file.
func NewConflictError(message string) *ExitError {
	return &ExitError{Code: ExitConflict, Message: message}
}

// GetExitCode maps err to a process exit code. Errors without a code, such
// as cobra's argument errors, are user errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUserError
}
