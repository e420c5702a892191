// Package upstream classifies errors from external collaborators.
// Transient failures (timeouts, rate limits, 5xx) are retried by the
// queue's backoff; everything else is fatal to the current phase.
package upstream

import (
	"context"
	"errors"
	"net"
)

// TransientError marks an error as retryable.
type TransientError struct {
	Err error
}

func (e *TransientError) Error() string { return e.Err.Error() }
func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps an error as retryable. Returns nil for nil.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &TransientError{Err: err}
}

// IsTransient reports whether any error in the chain is retryable.
// Deadline expiry and network timeouts count as transient even when
// not explicitly wrapped.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var te *TransientError
	if errors.As(err, &te) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// RetryableStatus reports whether an HTTP status from an upstream
// should be retried: 429 and all 5xx.
func RetryableStatus(code int) bool {
	return code == 429 || code >= 500
}
