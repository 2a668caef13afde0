package orchestrator

import "errors"

var (
	// ErrUnknownIntent is returned by Dispatch for an intent without a
	// registered handler.
	ErrUnknownIntent = errors.New("unknown intent")
	// ErrInvalidPayload is returned by Dispatch when the payload type does
	// not match the intent.
	ErrInvalidPayload = errors.New("invalid intent payload")
)
