package telegram

import "errors"

var (
	ErrTokenRequired = errors.New("telegram bot token is required")
	ErrUnavailable   = errors.New("telegram API unavailable")
	ErrAPI           = errors.New("telegram API error")
)
