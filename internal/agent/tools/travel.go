package tools

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"travel-planner/internal/agent"
	"travel-planner/internal/router"
	"travel-planner/pkg/amadeus"
	"travel-planner/pkg/datemath"
	"travel-planner/pkg/log"
	"travel-planner/pkg/money"
)

const (
	FlightToolName = "flight_search"
	HotelToolName  = "hotel_search"

	maxOffersShown = 3
	maxNights      = 30
)

var nightsPattern = regexp.MustCompile(`(?i)\b(\d{1,2})\s+nights?\b`)

// TravelSearcher is the flight and hotel offers provider.
type TravelSearcher interface {
	ResolveCityCode(ctx context.Context, place string) (string, error)
	SearchFlights(ctx context.Context, q amadeus.FlightQuery) ([]amadeus.FlightOffer, error)
	SearchHotels(ctx context.Context, q amadeus.HotelQuery) ([]amadeus.HotelOffer, error)
}

// travelDate picks the first date mentioned in message, defaulting to tomorrow.
func travelDate(dates *datemath.Parser, message string, now time.Time) time.Time {
	if d, ok := dates.Find(message, now); ok {
		return d
	}
	return now.In(dates.Location()).AddDate(0, 0, 1)
}

// FlightTool searches one-way flights for "from X to Y" requests.
type FlightTool struct {
	client TravelSearcher
	dates  *datemath.Parser
	l      log.Logger
	now    func() time.Time
}

func NewFlightTool(client TravelSearcher, dates *datemath.Parser, l log.Logger) *FlightTool {
	return &FlightTool{client: client, dates: dates, l: l, now: time.Now}
}

func (t *FlightTool) Name() string {
	return FlightToolName
}

func (t *FlightTool) Description() string {
	return "Search flight offers, e.g. \"flights from Paris to Rome next friday\""
}

func (t *FlightTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	origin, destination, ok := router.ExtractRoute(call.Message)
	if !ok {
		return agent.Answer("Where are you flying from and to? Try \"flights from Paris to Rome tomorrow\"."), nil
	}
	departure := travelDate(t.dates, call.Message, t.now())

	t.l.Infof(ctx, "flight_search: %s -> %s on %s", origin, destination, departure.Format(time.DateOnly))

	var originCode, destCode string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		code, err := t.client.ResolveCityCode(gctx, origin)
		originCode = code
		return placeError(origin, err)
	})
	g.Go(func() error {
		code, err := t.client.ResolveCityCode(gctx, destination)
		destCode = code
		return placeError(destination, err)
	})
	if err := g.Wait(); err != nil {
		return t.failed(ctx, err, origin+" to "+destination), nil
	}

	offers, err := t.client.SearchFlights(ctx, amadeus.FlightQuery{
		Origin:        originCode,
		Destination:   destCode,
		DepartureDate: departure,
		Max:           maxOffersShown,
	})
	if errors.Is(err, amadeus.ErrNoOffers) {
		return agent.Failed(agent.FailureNotFound, fmt.Sprintf("I couldn't find flights from %s to %s on %s. Try another date.",
			origin, destination, departure.Format("Mon 2 Jan"))), nil
	}
	if err != nil {
		return t.failed(ctx, err, origin+" to "+destination), nil
	}

	res := agent.Answer(formatFlights(origin, destination, departure, offers))
	res.Data = offers
	return res, nil
}

func (t *FlightTool) failed(ctx context.Context, err error, subject string) agent.Result {
	kind := classify(err)
	var pe *placeErr
	if errors.As(err, &pe) && kind == agent.FailureNotFound {
		subject = pe.place
	}
	t.l.Warnf(ctx, "flight_search: kind=%s: %v", kind, err)
	return agent.Failed(kind, agent.FailureMessage(kind, "flight search", subject))
}

func formatFlights(origin, destination string, day time.Time, offers []amadeus.FlightOffer) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Flights from %s to %s on %s:", origin, destination, day.Format("Mon 2 Jan"))
	for i, o := range offers {
		if i == maxOffersShown {
			break
		}
		stops := "direct"
		if o.Stops > 0 {
			stops = strconv.Itoa(o.Stops) + " stop"
			if o.Stops > 1 {
				stops += "s"
			}
		}
		fmt.Fprintf(&sb, "\n%d. %s, %s, %s, departs %s", i+1, o.FlightNumber, money.Format(o.Price, o.Currency), stops, clock(o.DepartureTime))
		if o.Duration != "" {
			fmt.Fprintf(&sb, " (%s)", o.Duration)
		}
	}
	return sb.String()
}

// clock shows the HH:MM part of an Amadeus local timestamp.
func clock(at string) string {
	if t, err := time.Parse("2006-01-02T15:04:05", at); err == nil {
		return t.Format("15:04")
	}
	return at
}

// placeErr remembers which place failed to resolve.
type placeErr struct {
	place string
	err   error
}

func (e *placeErr) Error() string { return e.place + ": " + e.err.Error() }
func (e *placeErr) Unwrap() error { return e.err }

func placeError(place string, err error) error {
	if err == nil {
		return nil
	}
	return &placeErr{place: place, err: err}
}

// HotelTool searches hotel offers in a city.
type HotelTool struct {
	client TravelSearcher
	dates  *datemath.Parser
	l      log.Logger
	now    func() time.Time
}

func NewHotelTool(client TravelSearcher, dates *datemath.Parser, l log.Logger) *HotelTool {
	return &HotelTool{client: client, dates: dates, l: l, now: time.Now}
}

func (t *HotelTool) Name() string {
	return HotelToolName
}

func (t *HotelTool) Description() string {
	return "Search hotel offers, e.g. \"hotel in Rome for 3 nights tomorrow\""
}

func (t *HotelTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	city := router.ExtractCity(call.Message)
	if city == "" {
		city = call.Memo[memoCity]
	}
	if city == "" {
		return agent.Answer("Which city are you looking for a hotel in? Try \"hotel in Rome for 2 nights\"."), nil
	}

	checkIn := travelDate(t.dates, call.Message, t.now())
	nights := 1
	if m := nightsPattern.FindStringSubmatch(call.Message); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 && n <= maxNights {
			nights = n
		}
	}
	checkOut := checkIn.AddDate(0, 0, nights)

	t.l.Infof(ctx, "hotel_search: city=%s check_in=%s nights=%d", city, checkIn.Format(time.DateOnly), nights)

	code, err := t.client.ResolveCityCode(ctx, city)
	if err != nil {
		return t.failed(ctx, err, city), nil
	}

	offers, err := t.client.SearchHotels(ctx, amadeus.HotelQuery{
		CityCode: code,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Max:      maxOffersShown,
	})
	if errors.Is(err, amadeus.ErrNoOffers) {
		return agent.Failed(agent.FailureNotFound, fmt.Sprintf("I couldn't find available hotels in %s for those dates. Try other dates.", city)), nil
	}
	if err != nil {
		return t.failed(ctx, err, city), nil
	}

	res := agent.Answer(formatHotels(city, checkIn, nights, offers))
	res.Memo = map[string]string{memoCity: city}
	res.Data = offers
	return res, nil
}

func (t *HotelTool) failed(ctx context.Context, err error, city string) agent.Result {
	kind := classify(err)
	t.l.Warnf(ctx, "hotel_search: city=%s kind=%s: %v", city, kind, err)
	return agent.Failed(kind, agent.FailureMessage(kind, "hotel search", city))
}

func formatHotels(city string, checkIn time.Time, nights int, offers []amadeus.HotelOffer) string {
	var sb strings.Builder
	plural := "night"
	if nights > 1 {
		plural = "nights"
	}
	fmt.Fprintf(&sb, "Hotels in %s from %s, %d %s:", city, checkIn.Format("Mon 2 Jan"), nights, plural)
	for i, o := range offers {
		if i == maxOffersShown {
			break
		}
		fmt.Fprintf(&sb, "\n%d. %s, %s", i+1, o.Name, money.Format(o.Price, o.Currency))
		if o.Rating != "" {
			fmt.Fprintf(&sb, " (%s★)", o.Rating)
		}
	}
	return sb.String()
}

var (
	_ agent.Tool = (*FlightTool)(nil)
	_ agent.Tool = (*HotelTool)(nil)
)
