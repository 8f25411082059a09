package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// SearchFlights returns flight offers for q. An empty result is ErrNoOffers.
func (c *Client) SearchFlights(ctx context.Context, q FlightQuery) ([]FlightOffer, error) {
	if q.Adults <= 0 {
		q.Adults = 1
	}
	if q.Max <= 0 {
		q.Max = defaultMaxResults
	}

	params := url.Values{}
	params.Set("originLocationCode", q.Origin)
	params.Set("destinationLocationCode", q.Destination)
	params.Set("departureDate", q.DepartureDate.Format(time.DateOnly))
	if !q.ReturnDate.IsZero() {
		params.Set("returnDate", q.ReturnDate.Format(time.DateOnly))
	}
	params.Set("adults", strconv.Itoa(q.Adults))
	params.Set("max", strconv.Itoa(q.Max))
	if q.Currency != "" {
		params.Set("currencyCode", q.Currency)
	}

	var resp flightOffersResponse
	if err := c.get(ctx, flightsPath, params, &resp); err != nil {
		return nil, fmt.Errorf("flight search failed: %w", err)
	}

	offers := make([]FlightOffer, 0, len(resp.Data))
	for _, d := range resp.Data {
		if len(d.Itineraries) == 0 || len(d.Itineraries[0].Segments) == 0 {
			continue
		}
		price, err := strconv.ParseFloat(d.Price.GrandTotal, 64)
		if err != nil || price <= 0 {
			continue
		}

		outbound := d.Itineraries[0]
		first := outbound.Segments[0]
		last := outbound.Segments[len(outbound.Segments)-1]

		offers = append(offers, FlightOffer{
			Price:         price,
			Currency:      d.Price.Currency,
			AirlineCode:   first.CarrierCode,
			FlightNumber:  first.CarrierCode + first.Number,
			DepartureTime: first.Departure.At,
			ArrivalTime:   last.Arrival.At,
			Duration:      humanDuration(outbound.Duration),
			Stops:         len(outbound.Segments) - 1,
		})
	}

	if len(offers) == 0 {
		return nil, fmt.Errorf("%w: %s-%s", ErrNoOffers, q.Origin, q.Destination)
	}
	return offers, nil
}

// SearchHotels lists hotels in the city and returns the available offers.
// An empty result is ErrNoOffers.
func (c *Client) SearchHotels(ctx context.Context, q HotelQuery) ([]HotelOffer, error) {
	if q.Adults <= 0 {
		q.Adults = 1
	}
	if q.Max <= 0 {
		q.Max = defaultMaxResults
	}

	listParams := url.Values{}
	listParams.Set("cityCode", q.CityCode)
	listParams.Set("radius", "5")
	listParams.Set("radiusUnit", "KM")

	var list hotelListResponse
	if err := c.get(ctx, hotelListPath, listParams, &list); err != nil {
		return nil, fmt.Errorf("hotel list failed: %w", err)
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, h := range list.Data {
		if h.HotelID == "" {
			continue
		}
		ids = append(ids, h.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no hotels in %s", ErrNoOffers, q.CityCode)
	}

	offerParams := url.Values{}
	offerParams.Set("hotelIds", strings.Join(ids, ","))
	offerParams.Set("checkInDate", q.CheckIn.Format(time.DateOnly))
	offerParams.Set("checkOutDate", q.CheckOut.Format(time.DateOnly))
	offerParams.Set("adults", strconv.Itoa(q.Adults))

	var resp hotelOffersResponse
	if err := c.get(ctx, hotelOfferPath, offerParams, &resp); err != nil {
		return nil, fmt.Errorf("hotel offers failed: %w", err)
	}

	offers := make([]HotelOffer, 0, q.Max)
	for _, d := range resp.Data {
		if !d.Available || len(d.Offers) == 0 {
			continue
		}
		price, err := strconv.ParseFloat(d.Offers[0].Price.Total, 64)
		if err != nil {
			continue
		}
		offers = append(offers, HotelOffer{
			HotelID:  d.Hotel.HotelID,
			Name:     d.Hotel.Name,
			CityCode: d.Hotel.CityCode,
			Rating:   d.Hotel.Rating,
			Price:    price,
			Currency: d.Offers[0].Price.Currency,
		})
		if len(offers) == q.Max {
			break
		}
	}

	if len(offers) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoOffers, q.CityCode)
	}
	return offers, nil
}

// humanDuration turns an ISO 8601 duration such as "PT2H35M" into "2h 35m".
func humanDuration(iso string) string {
	d := strings.TrimPrefix(iso, "PT")
	d = strings.ToLower(d)
	d = strings.Replace(d, "h", "h ", 1)
	return strings.TrimSpace(d)
}
