package cmd

import (
	"errors"
	"fmt"
)

// Process exit statuses. Per-blob failures during a mirror run do not
// affect the exit status; only global failures do.
const (
	ExitOK                      = 0
	ExitUnexpected              = 1
	ExitMissingOutputDir        = 2
	ExitMissingConnectionString = 3
	ExitMissingContainer        = 4
	ExitOutputRootIsFile        = 5
)

// ExitError carries the exit status a fatal error terminates the
// process with.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func exitErrorf(code int, format string, args ...any) *ExitError {
	return &ExitError{Code: code, Err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUnexpected
}
