package agent

import "errors"

var (
	ErrToolNotRegistered = errors.New("tool not registered")
	ErrSessionClosed     = errors.New("chat session closed")
	ErrSessionForbidden  = errors.New("chat session belongs to another user")
	ErrEmptyMessage      = errors.New("message is empty")
)
