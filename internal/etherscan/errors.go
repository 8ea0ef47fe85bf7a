package etherscan

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    error = errors.New("explorer api key is not configured")
	ErrUnavailable        error = errors.New("explorer unavailable")
	ErrRejected           error = errors.New("explorer rejected request")
	ErrMalformedResponse  error = errors.New("malformed explorer response")
	errUnexpectedEnvelope error = fmt.Errorf("%w: unexpected envelope", ErrMalformedResponse)
)

// RejectedError carries the upstream message verbatim together with the raw
// payload for diagnostics.
type RejectedError struct {
	Message string
	Payload []byte
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRejected, e.Message)
}

func (e *RejectedError) Unwrap() error {
	return ErrRejected
}
