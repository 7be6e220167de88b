package playlist

import (
	"context"
	"errors"
	"net/http"
)

// apiError is a terminal outcome carrying its HTTP translation. The store
// never recovers from one; it propagates to the handler layer.
type apiError struct {
	status int
	msg    string
}

func (e *apiError) Error() string { return e.msg }

func errNotFound(msg string) error {
	return &apiError{status: http.StatusNotFound, msg: msg}
}

func errForbidden(msg string) error {
	return &apiError{status: http.StatusForbidden, msg: msg}
}

// errWriteFailed reports a mutation that should have affected exactly one
// row but affected zero. Not retried.
func errWriteFailed(msg string) error {
	return &apiError{status: http.StatusInternalServerError, msg: msg}
}

// errStorageUnavailable is retryable by the caller.
func errStorageUnavailable(msg string) error {
	return &apiError{status: http.StatusServiceUnavailable, msg: msg}
}

// storageErr maps a raw driver error: timeouts and cancellations become a
// retryable 503, everything else passes through for the handler to log.
func storageErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errStorageUnavailable("storage unavailable, retry later")
	}
	return err
}
