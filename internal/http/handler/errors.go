package handler

import (
	"errors"
	"net/http"
	"walletscan/internal/core"
	"walletscan/internal/etherscan"
)

// errorStatus maps a service error to the status code and the error text
// shown to the caller. Internal failures are not described to the caller.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, core.ErrInvalidAddress), errors.Is(err, core.ErrInvalidRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, core.ErrQueryNotFound), errors.Is(err, core.ErrNotCached):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, etherscan.ErrUnavailable):
		return http.StatusServiceUnavailable, err.Error()
	case errors.Is(err, etherscan.ErrRejected), errors.Is(err, etherscan.ErrMalformedResponse):
		return http.StatusBadGateway, err.Error()
	default:
		// etherscan.ErrUnauthenticated and core.ErrPersistence land here
		return http.StatusInternalServerError, unexpectedErr
	}
}
