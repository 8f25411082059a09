package router

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/pkg/log"
)

func TestClassify(t *testing.T) {
	r := New(log.NewNop())
	ctx := context.Background()

	tcs := []struct {
		name    string
		message string
		intent  Intent
		fields  map[string]string
	}{
		{
			name:    "expense with amount and food category",
			message: "I spent $45 on dinner last night",
			intent:  IntentExpense,
			fields:  map[string]string{FieldAmount: "45", FieldCategory: "Food", FieldCurrency: "USD"},
		},
		{
			name:    "itinerary for tomorrow",
			message: "Can you show me my itinerary for tomorrow?",
			intent:  IntentItinerary,
			fields:  map[string]string{FieldWhen: "tomorrow"},
		},
		{
			name:    "flight search",
			message: "Find flights from Paris to Rome tomorrow",
			intent:  IntentFlightSearch,
		},
		{
			name:    "hotel search",
			message: "Any hotels with a free room in Lisbon?",
			intent:  IntentHotelSearch,
		},
		{
			name:    "packing checklist",
			message: "What should I pack in my suitcase? I always forget my charger",
			intent:  IntentChecklist,
			fields:  map[string]string{FieldCategory: "Electronics"},
		},
		{
			name:    "unrelated text",
			message: "asdf qqq zzz",
			intent:  IntentGeneralChat,
		},
		{
			name:    "empty",
			message: "",
			intent:  IntentGeneralChat,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			out := r.Classify(ctx, tc.message)
			assert.Equal(t, tc.intent, out.Intent)
			assert.GreaterOrEqual(t, out.Confidence, 0.0)
			assert.LessOrEqual(t, out.Confidence, 1.0)
			for k, v := range tc.fields {
				assert.Equal(t, v, out.Fields[k], "field %s", k)
			}
		})
	}
}

func TestClassifyTieBreak(t *testing.T) {
	ctx := context.Background()

	t.Run("hotel beats flight on default table", func(t *testing.T) {
		out := New(log.NewNop()).Classify(ctx, "hotel flight resort plane hostel ticket")
		require.Equal(t, out.Scores[IntentHotelSearch], out.Scores[IntentFlightSearch])
		assert.Equal(t, IntentHotelSearch, out.Intent)
	})

	t.Run("table order decides", func(t *testing.T) {
		cats := []Category{
			{Intent: IntentFlightSearch, Keywords: []string{"alpha", "beta"}},
			{Intent: IntentHotelSearch, Keywords: []string{"gamma", "delta"}},
		}
		out := NewWithCategories(log.NewNop(), cats).Classify(ctx, "alpha gamma")
		assert.Equal(t, IntentFlightSearch, out.Intent)
	})
}

func TestScore(t *testing.T) {
	tcs := []struct {
		name     string
		message  string
		keywords []string
		want     float64
	}{
		{"no match", "hello", []string{"world"}, 0},
		{"short keyword", "a cab", []string{"cab", "zzzzzzzz"}, 1.0 / 2 * (1.0 / 3)},
		{"medium keyword", "hotel", []string{"hotel", "zzzzzzzz"}, 1.5 / 2 * (1.0 / 3)},
		{"long keyword", "luggage", []string{"luggage", "zzzzzzzz"}, 2.0 / 2 * (1.0 / 3)},
		{"boost caps at 1.5", "aaa bbb ccc ddd eee", []string{"aaa", "bbb", "ccc", "ddd", "eee"}, 1.0},
		{"clamped to one", "passport luggage suitcase checklist", []string{"passport", "luggage", "suitcase", "checklist"}, 1.0},
		{"empty keywords", "anything", nil, 0},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, Score(tc.message, tc.keywords), 1e-9)
		})
	}
}

func TestExtractors(t *testing.T) {
	t.Run("city", func(t *testing.T) {
		assert.Equal(t, "Paris", ExtractCity("What's the weather in Paris?"))
		assert.Equal(t, "New York", ExtractCity("is it raining in New York today"))
		assert.Equal(t, "Rome", ExtractCity("hotels in the centre? I mean in Rome"))
		assert.Equal(t, "", ExtractCity("what's the weather like"))
	})

	t.Run("conversion", func(t *testing.T) {
		q, ok := ExtractConversion("Convert 100 USD to EUR")
		require.True(t, ok)
		assert.Equal(t, ConversionQuery{Amount: 100, From: "USD", To: "EUR"}, q)

		q, ok = ExtractConversion("how much is €12,50 in gbp")
		require.True(t, ok)
		assert.Equal(t, ConversionQuery{Amount: 12.5, From: "EUR", To: "GBP"}, q)

		_, ok = ExtractConversion("convert some money")
		assert.False(t, ok)
	})

	t.Run("route", func(t *testing.T) {
		o, d, ok := ExtractRoute("flights from New York to Los Angeles next friday")
		require.True(t, ok)
		assert.Equal(t, "New York", o)
		assert.Equal(t, "Los Angeles", d)

		_, _, ok = ExtractRoute("cheap flights please")
		assert.False(t, ok)
	})

	t.Run("expense categories", func(t *testing.T) {
		assert.Equal(t, "Transportation", extractExpense("paid 20 euros for a taxi")[FieldCategory])
		assert.Equal(t, "EUR", extractExpense("paid 20 euros for a taxi")[FieldCurrency])
		assert.Equal(t, "20", extractExpense("paid 20 euros for a taxi")[FieldAmount])
		assert.Equal(t, "12.50", extractExpense("bought a souvenir for £12.50")[FieldAmount])
		assert.NotContains(t, extractExpense("spent a lot"), FieldAmount)
	})

	t.Run("itinerary type", func(t *testing.T) {
		f := extractItinerary("what museum visits do I have this week")
		assert.Equal(t, "this week", f[FieldWhen])
		assert.Equal(t, "sightseeing", f[FieldType])
	})
}

func TestParseIntent(t *testing.T) {
	assert.Equal(t, IntentExpense, ParseIntent("EXPENSE"))
	assert.Equal(t, IntentUnknown, ParseIntent("weather"))
}
