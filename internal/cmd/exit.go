package cmd

import (
	"errors"
	"io/fs"

	oerrors "github.com/dslectures/coursekit/internal/errors"
	"github.com/dslectures/coursekit/internal/output"
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error or a failed write.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid arguments, names or config.
	ExitValidationError = 2

	// ExitPermissionDenied indicates insufficient filesystem permissions.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a missing project root, lecture or config file.
	ExitNotFound = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitValidationError:
		return "Validation Error"
	case ExitPermissionDenied:
		return "Permission Denied"
	case ExitNotFound:
		return "Not Found"
	default:
		return "Unknown"
	}
}

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, oerrors.ErrValidation), errors.Is(err, oerrors.ErrInvalidName):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrPermission), errors.Is(err, fs.ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// exitError wraps err with the exit code it maps to.
func exitError(err error) error {
	if err == nil {
		return nil
	}
	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return err
	}
	code := ExitCodeFromError(err)
	output.Debug("command failed", "exit", code, "reason", ExitCodeName(code))
	return &oerrors.ExitError{Code: code, Err: err}
}
