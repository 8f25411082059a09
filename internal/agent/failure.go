package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/url"
)

// FailureKind classifies what went wrong with an external call.
type FailureKind string

const (
	FailureNone      FailureKind = ""
	FailureNetwork   FailureKind = "network"
	FailureMalformed FailureKind = "malformed"
	FailureNotFound  FailureKind = "not_found"
	FailureGeneric   FailureKind = "generic"
)

// FailureFromError classifies transport and decoding errors. Callers map their
// own not-found sentinels before falling back to this.
func FailureFromError(err error) FailureKind {
	if err == nil {
		return FailureNone
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return FailureNetwork
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return FailureMalformed
	}

	return FailureGeneric
}

// FailureMessage renders the user-facing text for a failed lookup.
func FailureMessage(kind FailureKind, service, subject string) string {
	switch kind {
	case FailureNotFound:
		return fmt.Sprintf("I couldn't find %q. Check the spelling or try a nearby city.", subject)
	case FailureNetwork:
		return fmt.Sprintf("I couldn't reach the %s service right now. Please check your connection and try again.", service)
	default:
		return fmt.Sprintf("Sorry, something went wrong with the %s request. Please try again later.", service)
	}
}
