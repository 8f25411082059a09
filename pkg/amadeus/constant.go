package amadeus

import "time"

const (
	// DefaultBaseURL is the Amadeus self-service test environment
	DefaultBaseURL = "https://test.api.amadeus.com"

	// DefaultTimeout bounds every call, token requests included
	DefaultTimeout = 30 * time.Second

	tokenPath      = "/v1/security/oauth2/token"
	locationsPath  = "/v1/reference-data/locations"
	flightsPath    = "/v2/shopping/flight-offers"
	hotelListPath  = "/v1/reference-data/locations/hotels/by-city"
	hotelOfferPath = "/v3/shopping/hotel-offers"

	defaultMaxResults = 5
	maxHotelIDs       = 20

	locationCacheSize = 512
	locationCacheTTL  = 24 * time.Hour
)
