package router

// Intent represents the user's intention
type Intent string

const (
	IntentExpense      Intent = "EXPENSE"
	IntentItinerary    Intent = "ITINERARY"
	IntentChecklist    Intent = "CHECKLIST"
	IntentFlightSearch Intent = "FLIGHT_SEARCH"
	IntentHotelSearch  Intent = "HOTEL_SEARCH"
	IntentGeneralChat  Intent = "GENERAL_CHAT"
	IntentUnknown      Intent = "UNKNOWN"
)

var knownIntents = []Intent{
	IntentExpense,
	IntentItinerary,
	IntentChecklist,
	IntentFlightSearch,
	IntentHotelSearch,
	IntentGeneralChat,
}

// ParseIntent maps a wire name to an Intent. Unrecognised names map to IntentUnknown.
func ParseIntent(s string) Intent {
	for _, i := range knownIntents {
		if string(i) == s {
			return i
		}
	}
	return IntentUnknown
}

// Field keys produced by the extractors.
const (
	FieldAmount   = "amount"
	FieldCategory = "category"
	FieldCurrency = "currency"
	FieldWhen     = "when"
	FieldType     = "type"
)

// RouterOutput is the classification of one utterance.
type RouterOutput struct {
	Intent     Intent             `json:"intent"`
	Confidence float64            `json:"confidence"` // 0-1
	Fields     map[string]string  `json:"fields,omitempty"`
	Scores     map[Intent]float64 `json:"scores,omitempty"`
}

// Category is one scored intent: its keyword set and the extractor run when it wins.
type Category struct {
	Intent   Intent
	Keywords []string
	Extract  func(message string) map[string]string
}

// ConversionQuery is an "<amount> <CODE> to <CODE>" request.
type ConversionQuery struct {
	Amount float64
	From   string
	To     string
}
