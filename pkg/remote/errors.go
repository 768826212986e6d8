package remote

import "errors"

var (
	ErrInvalidURL       = errors.New("invalid remote validation URL")
	ErrRequestFailed    = errors.New("remote validation request failed")
	ErrPermanentFailure = errors.New("permanent remote validation failure")
	ErrTimeout          = errors.New("remote validation request timeout")
	ErrInvalidResponse  = errors.New("invalid remote validation response")
	ErrCircuitOpen      = errors.New("remote validation circuit breaker is open")
)

// IsCircuitOpen reports whether err was caused by an open circuit breaker.
func IsCircuitOpen(err error) bool {
	return errors.Is(err, ErrCircuitOpen)
}
