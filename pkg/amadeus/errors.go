package amadeus

import "errors"

var (
	ErrCredentialsRequired = errors.New("amadeus client id and secret are required")
	ErrLocationNotFound    = errors.New("location not found")
	ErrNoOffers            = errors.New("no offers found")
	ErrRequestRejected     = errors.New("amadeus rejected the request")
	ErrUnavailable         = errors.New("amadeus unavailable")
	ErrMalformedResponse   = errors.New("malformed amadeus response")
)
