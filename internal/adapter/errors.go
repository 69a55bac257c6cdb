package adapter

import "errors"

// Transport errors, one per HTTP status class the mobile server answers
// with. The response body follows after ": ".
var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrServerUnreachable wraps connection failures: wrong address, phone
	// asleep, different network.
	ErrServerUnreachable = errors.New("mobile server unreachable")

	ErrDecodingResponse = errors.New("failed to decode server response")
)
