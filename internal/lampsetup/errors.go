package lampsetup

import (
	"errors"
	"fmt"
	"os/exec"
)

var (
	ErrInvalidDomain    = errors.New("invalid domain: use letters, digits, '.' and '-', not only dots")
	ErrAborted          = errors.New("aborted by operator")
	ErrChecksumMismatch = errors.New("composer installer checksum mismatch")
	ErrInputClosed      = errors.New("input closed before an answer was given")
)

// StepError reports the first failing command of a provisioning step.
type StepError struct {
	Step    string
	Command string
	Err     error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Step, e.Command, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit status of the failed command, or 1 when the
// command never started or was killed.
func (e *StepError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode()
	}
	return 1
}
