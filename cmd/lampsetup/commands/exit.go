package commands

import (
	"errors"

	"github.com/DevDhruvJoshi/PrecociousInstallationSetup/internal/lampsetup"
)

// An error type that includes an exit code
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

func ExitWithCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{Code: code, Err: err}
}

// ExitCode maps an error to the process exit status. A failed external
// command propagates its own status; every other failure exits 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var stepErr *lampsetup.StepError
	if errors.As(err, &stepErr) {
		return stepErr.ExitCode()
	}
	return 1
}
