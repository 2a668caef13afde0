package service

import "errors"

// ErrPrecondition is matched by every error raised before a request is
// issued. Such errors never reach the network.
var ErrPrecondition = errors.New("precondition failed")

type preconditionError struct {
	msg string
}

func (e *preconditionError) Error() string { return e.msg }

// Is makes every precondition error match [ErrPrecondition].
func (e *preconditionError) Is(target error) bool { return target == ErrPrecondition }

func newPreconditionError(msg string) error {
	return &preconditionError{msg: msg}
}

var (
	ErrEmptyMessage       = newPreconditionError("message is empty")
	ErrSessionBusy        = newPreconditionError("a message is already being sent")
	ErrInvalidChatMode    = newPreconditionError("unknown chat mode")
	ErrDeleteNotConfirmed = newPreconditionError("delete was not confirmed")
	ErrDocumentNotFound   = newPreconditionError("document is not in the registry")
	ErrEmptyFilename      = newPreconditionError("file name is empty")
	ErrNoConversation     = newPreconditionError("no conversation to export")
	ErrEmptyQuizTopic     = newPreconditionError("quiz topic is empty")
)

var (
	// ErrSessionSuperseded is returned by a send whose conversation was
	// reset while the request was in flight. Its reply is discarded.
	ErrSessionSuperseded = errors.New("conversation was reset during send")

	// ErrQuizUnavailable is returned by the default quiz generator.
	ErrQuizUnavailable = errors.New("quiz generation is not available")
)
