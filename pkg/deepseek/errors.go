package deepseek

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyRequired    = errors.New("deepseek: API key is required")
	ErrEmptyRequest      = errors.New("deepseek: request has no messages")
	ErrNoChoices         = errors.New("deepseek: response has no choices")
	ErrMalformedResponse = errors.New("deepseek: malformed response")
)

// APIError is a non-200 reply from the API.
type APIError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("deepseek: API error %d: %s", e.StatusCode, e.Message)
}
