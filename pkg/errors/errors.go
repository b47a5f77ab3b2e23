package errors

import "errors"

var (
	// ErrInvalidInput marks client-correctable problems: malformed phone
	// numbers, empty messages, unsupported upload types.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned for number lookups with no reports on record.
	// Distinct from a LOW risk verdict: no data is not the same as safe.
	ErrNotFound = errors.New("resource not found")

	// ErrUpstreamUnavailable covers OCR and gallery storage outages.
	ErrUpstreamUnavailable = errors.New("upstream service unavailable")

	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal server error")
)
