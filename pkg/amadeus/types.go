package amadeus

import "time"

// Config configures the client.
type Config struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// Location is a city or airport from the locations API.
type Location struct {
	Name        string `json:"name"`
	SubType     string `json:"sub_type"`
	IATACode    string `json:"iata_code"`
	CityCode    string `json:"city_code"`
	CountryCode string `json:"country_code"`
}

// FlightQuery is a one-way or return flight search.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Adults        int
	Max           int
	Currency      string
}

// FlightOffer is a summarised flight offer.
type FlightOffer struct {
	Price         float64 `json:"price"`
	Currency      string  `json:"currency"`
	AirlineCode   string  `json:"airline_code"`
	FlightNumber  string  `json:"flight_number"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
}

// HotelQuery is a hotel availability search.
type HotelQuery struct {
	CityCode string
	CheckIn  time.Time
	CheckOut time.Time
	Adults   int
	Max      int
}

// HotelOffer is a summarised hotel offer.
type HotelOffer struct {
	HotelID  string  `json:"hotel_id"`
	Name     string  `json:"name"`
	CityCode string  `json:"city_code"`
	Rating   string  `json:"rating,omitempty"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

type locationsResponse struct {
	Data []struct {
		SubType  string `json:"subType"`
		Name     string `json:"name"`
		IATACode string `json:"iataCode"`
		Address  struct {
			CityName    string `json:"cityName"`
			CityCode    string `json:"cityCode"`
			CountryCode string `json:"countryCode"`
		} `json:"address"`
	} `json:"data"`
}

type segment struct {
	Departure struct {
		IATACode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"departure"`
	Arrival struct {
		IATACode string `json:"iataCode"`
		At       string `json:"at"`
	} `json:"arrival"`
	CarrierCode string `json:"carrierCode"`
	Number      string `json:"number"`
}

type flightOffersResponse struct {
	Data []struct {
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string    `json:"duration"`
			Segments []segment `json:"segments"`
		} `json:"itineraries"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
	} `json:"data"`
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			HotelID  string `json:"hotelId"`
			Name     string `json:"name"`
			CityCode string `json:"cityCode"`
			Rating   string `json:"rating"`
		} `json:"hotel"`
		Available bool `json:"available"`
		Offers    []struct {
			Price struct {
				Total    string `json:"total"`
				Currency string `json:"currency"`
			} `json:"price"`
		} `json:"offers"`
	} `json:"data"`
}
