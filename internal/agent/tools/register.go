package tools

import (
	"travel-planner/internal/agent"
	"travel-planner/internal/router"
)

// Set is the tools available to a deployment. Nil entries are skipped,
// leaving their intent to the chat model.
type Set struct {
	Weather   *WeatherTool
	Currency  *CurrencyTool
	Flight    *FlightTool
	Hotel     *HotelTool
	Expense   *LogExpenseTool
	Itinerary *ShowItineraryTool
	Packing   *PackingTool
}

// Register adds detectors first, then binds each intent tool.
func Register(reg *agent.ToolRegistry, s Set) error {
	if s.Weather != nil {
		reg.Register(s.Weather)
	}
	if s.Currency != nil {
		reg.Register(s.Currency)
	}

	bound := []struct {
		intent router.Intent
		tool   agent.Tool
		ok     bool
	}{
		{router.IntentHotelSearch, s.Hotel, s.Hotel != nil},
		{router.IntentFlightSearch, s.Flight, s.Flight != nil},
		{router.IntentExpense, s.Expense, s.Expense != nil},
		{router.IntentItinerary, s.Itinerary, s.Itinerary != nil},
		{router.IntentChecklist, s.Packing, s.Packing != nil},
	}
	for _, b := range bound {
		if !b.ok {
			continue
		}
		reg.Register(b.tool)
		if err := reg.Bind(b.intent, b.tool.Name()); err != nil {
			return err
		}
	}
	return nil
}
