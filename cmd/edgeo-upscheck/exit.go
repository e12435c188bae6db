package main

import (
	"errors"
	"fmt"
)

// Process exit codes.
const (
	exitOK             = 0
	exitUsage          = 1
	exitMissingCommand = 2
	exitUnknownCommand = 3
	exitQueryFailed    = 4
)

// exitError carries the exit code a failure maps to. A nil err means the
// message has already been printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func usageError(format string, args ...interface{}) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, args...)}
}

// exitCode maps an error returned by the root command to a process exit code.
// Errors raised by cobra itself, such as unknown flags, are usage errors.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}
