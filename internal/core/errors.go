package core

import "errors"

var (
	// ErrServiceUnavailable wraps completion-service failures (network,
	// auth, quota). The synthesizer absorbs it and escalates.
	ErrServiceUnavailable = errors.New("completion service unavailable")

	// ErrConversationNotFound is returned when a message references a
	// conversation id that does not exist.
	ErrConversationNotFound = errors.New("conversation not found")

	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)
