package gemini

import "errors"

var (
	ErrAPIKeyRequired    = errors.New("gemini: API key is required")
	ErrEmptyRequest      = errors.New("gemini: request has no messages")
	ErrNoCandidates      = errors.New("gemini: response has no candidates")
	ErrMalformedResponse = errors.New("gemini: malformed response")
)
