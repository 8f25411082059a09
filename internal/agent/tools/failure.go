package tools

import (
	"errors"

	"travel-planner/internal/agent"
	"travel-planner/pkg/amadeus"
	"travel-planner/pkg/openweather"
)

// classify maps client sentinels onto failure kinds, falling back to transport classification.
func classify(err error) agent.FailureKind {
	switch {
	case errors.Is(err, openweather.ErrCityNotFound),
		errors.Is(err, amadeus.ErrLocationNotFound),
		errors.Is(err, amadeus.ErrNoOffers):
		return agent.FailureNotFound
	case errors.Is(err, openweather.ErrMalformedResponse),
		errors.Is(err, amadeus.ErrMalformedResponse):
		return agent.FailureMalformed
	}
	return agent.FailureFromError(err)
}
