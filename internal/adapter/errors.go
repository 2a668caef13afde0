package adapter

import (
	"errors"
	"fmt"
	"net/http"
)

// Transport error taxonomy. Every error returned by a [BackendAdapter] method
// matches exactly one of ErrNetwork, ErrBackend or ErrParse via [errors.Is].
var (
	// ErrNetwork means the backend could not be reached or the request timed
	// out before a response arrived.
	ErrNetwork = errors.New("backend unreachable")
	// ErrBackend means the backend answered with a non-2xx status.
	ErrBackend = errors.New("backend error")
	// ErrNotFound is matched in addition to ErrBackend for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrParse means a 2xx response body could not be decoded.
	ErrParse = errors.New("malformed backend response")
)

// BackendError is a non-2xx backend response. Detail holds the optional
// human-readable `detail` field of the error body.
type BackendError struct {
	StatusCode int
	Detail     string
}

func (e *BackendError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: http %d %s", ErrBackend, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s: http %d: %s", ErrBackend, e.StatusCode, e.Detail)
}

// Is reports whether target is ErrBackend, or ErrNotFound for a 404.
func (e *BackendError) Is(target error) bool {
	switch target {
	case ErrBackend:
		return true
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	}
	return false
}

// DetailOf extracts the backend-supplied detail text from err, if any.
func DetailOf(err error) (string, bool) {
	var be *BackendError
	if errors.As(err, &be) && be.Detail != "" {
		return be.Detail, true
	}
	return "", false
}
