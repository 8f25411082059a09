package router

// DefaultCategories is the scored category table. Order is the tie-break priority:
// the first category reaching the maximum score wins.
func DefaultCategories() []Category {
	return []Category{
		{
			Intent: IntentHotelSearch,
			Keywords: []string{
				"hotel", "hotels", "accommodation", "stay", "room", "resort",
				"hostel", "lodging", "check-in", "airbnb", "motel", "book a room",
			},
		},
		{
			Intent: IntentFlightSearch,
			Keywords: []string{
				"flight", "flights", "fly", "airline", "airport", "plane",
				"ticket", "departure", "round trip", "one way", "layover", "boarding",
			},
		},
		{
			Intent: IntentExpense,
			Keywords: []string{
				"spent", "spend", "paid", "pay", "cost", "expense", "bought", "purchase",
				"price", "dinner", "lunch", "breakfast", "$", "budget", "bill", "receipt",
			},
			Extract: extractExpense,
		},
		{
			Intent: IntentItinerary,
			Keywords: []string{
				"itinerary", "schedule", "plans", "agenda", "tomorrow", "today", "tonight", "activity",
				"activities", "visit", "tour", "sightseeing", "reservation", "booked", "what's next", "trip plan",
			},
			Extract: extractItinerary,
		},
		{
			Intent: IntentChecklist,
			Keywords: []string{
				"pack", "packing", "checklist", "bring", "forgot", "luggage", "suitcase",
				"toiletries", "clothes", "passport", "charger", "documents", "essentials", "list",
			},
			Extract: extractChecklist,
		},
	}
}

type keywordGroup struct {
	name     string
	keywords []string
}

var expenseCategories = []keywordGroup{
	{"Food", []string{"food", "dinner", "lunch", "breakfast", "restaurant", "meal", "coffee", "snack", "drinks", "cafe", "groceries"}},
	{"Accommodation", []string{"hotel", "hostel", "airbnb", "accommodation", "room", "lodging", "motel"}},
	{"Transportation", []string{"taxi", "uber", "bus", "train", "flight", "transport", "metro", "subway", "gas", "fuel", "car rental", "ferry"}},
	{"Entertainment", []string{"tour", "museum", "ticket", "activity", "concert", "show", "park", "entrance", "excursion"}},
	{"Shopping", []string{"shopping", "souvenir", "clothes", "gift", "store", "market", "mall"}},
}

// whenKeywords are checked in order; the first present wins.
var whenKeywords = []string{
	"today", "tomorrow", "tonight", "morning", "afternoon", "evening", "this week", "next week",
}

var itineraryTypes = []keywordGroup{
	{"sightseeing", []string{"sightseeing", "tour", "museum", "visit", "landmark", "attraction", "monument"}},
	{"dining", []string{"dinner", "lunch", "breakfast", "restaurant", "dining", "eat", "food", "brunch"}},
	{"accommodation", []string{"hotel", "check-in", "check in", "check-out", "hostel", "accommodation", "airbnb"}},
}

var checklistCategories = []keywordGroup{
	{"Clothing", []string{"clothes", "clothing", "shirt", "jacket", "shoes", "pants", "socks", "swimsuit"}},
	{"Toiletries", []string{"toiletries", "toothbrush", "toothpaste", "shampoo", "soap", "deodorant", "sunscreen"}},
	{"Documents", []string{"passport", "visa", "documents", "tickets", "id card", "insurance", "boarding pass"}},
	{"Electronics", []string{"charger", "phone", "laptop", "camera", "adapter", "headphones", "power bank"}},
}
