package router

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	symbolAmountPattern = regexp.MustCompile(`([$€£¥])\s?(\d+(?:[.,]\d+)?)`)
	codeAmountPattern   = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s?(usd|eur|gbp|jpy|cad|aud|chf|dollars?|euros?|pounds?|yen|bucks)\b`)
	plainAmountPattern  = regexp.MustCompile(`\d+(?:[.,]\d+)?`)

	cityPattern       = regexp.MustCompile(`\b(?i:in)\s+([A-Za-z][A-Za-z'\-]*(?:\s+[A-Z][A-Za-z'\-]*)*)`)
	conversionPattern = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*([a-z]{3})\s+(?:to|in|into)\s+([a-z]{3})\b`)
	symbolConvPattern = regexp.MustCompile(`(?i)([$€£¥])\s*(\d+(?:[.,]\d+)?)\s+(?:to|in|into)\s+([a-z]{3})\b`)
	routePattern      = regexp.MustCompile(`(?i)\bfrom\s+([a-z][a-z .'\-]*?)\s+to\s+([a-z][a-z .'\-]*?)(?:\s+(?:on|for|in|next|this|tomorrow|today|tonight|departing|leaving|returning|with)\b|[?.!,]|$)`)
)

var symbolCurrency = map[string]string{
	"$": "USD",
	"€": "EUR",
	"£": "GBP",
	"¥": "JPY",
}

var wordCurrency = map[string]string{
	"dollar": "USD",
	"bucks":  "USD",
	"euro":   "EUR",
	"pound":  "GBP",
	"yen":    "JPY",
}

var cityStopwords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "our": true, "this": true, "that": true, "there": true,
	"at": true, "advance": true, "cash": true, "total": true, "case": true, "person": true,
}

func extractExpense(message string) map[string]string {
	fields := map[string]string{}

	if m := symbolAmountPattern.FindStringSubmatch(message); m != nil {
		fields[FieldAmount] = normalizeAmount(m[2])
		fields[FieldCurrency] = symbolCurrency[m[1]]
	} else if m := codeAmountPattern.FindStringSubmatch(message); m != nil {
		fields[FieldAmount] = normalizeAmount(m[1])
		fields[FieldCurrency] = currencyFromWord(m[2])
	} else if m := plainAmountPattern.FindString(message); m != "" {
		fields[FieldAmount] = normalizeAmount(m)
	}

	if cat := firstGroup(strings.ToLower(message), expenseCategories); cat != "" {
		fields[FieldCategory] = cat
	}
	return fields
}

func extractItinerary(message string) map[string]string {
	fields := map[string]string{}
	lower := strings.ToLower(message)

	for _, w := range whenKeywords {
		if strings.Contains(lower, w) {
			fields[FieldWhen] = w
			break
		}
	}
	if t := firstGroup(lower, itineraryTypes); t != "" {
		fields[FieldType] = t
	}
	return fields
}

func extractChecklist(message string) map[string]string {
	fields := map[string]string{}
	if cat := firstGroup(strings.ToLower(message), checklistCategories); cat != "" {
		fields[FieldCategory] = cat
	}
	return fields
}

func firstGroup(lower string, groups []keywordGroup) string {
	for _, g := range groups {
		for _, k := range g.keywords {
			if strings.Contains(lower, k) {
				return g.name
			}
		}
	}
	return ""
}

func normalizeAmount(s string) string {
	return strings.ReplaceAll(s, ",", ".")
}

func currencyFromWord(w string) string {
	w = strings.ToLower(w)
	if len(w) == 3 && w != "yen" {
		return strings.ToUpper(w)
	}
	for prefix, code := range wordCurrency {
		if strings.HasPrefix(w, prefix) {
			return code
		}
	}
	return ""
}

// ExtractCity returns the place named after "in", e.g. "Paris" for
// "What's the weather in Paris?". Follow-on capitalised words are kept ("New York").
func ExtractCity(message string) string {
	for _, m := range cityPattern.FindAllStringSubmatch(message, -1) {
		words := strings.Fields(m[1])
		if len(words) == 0 || cityStopwords[strings.ToLower(words[0])] {
			continue
		}
		return strings.Join(words, " ")
	}
	return ""
}

// ExtractConversion parses "<amount> <CODE> to <CODE>" or "<symbol><amount> to <CODE>".
func ExtractConversion(message string) (ConversionQuery, bool) {
	if m := conversionPattern.FindStringSubmatch(message); m != nil {
		amount, err := strconv.ParseFloat(normalizeAmount(m[1]), 64)
		if err == nil {
			return ConversionQuery{
				Amount: amount,
				From:   strings.ToUpper(m[2]),
				To:     strings.ToUpper(m[3]),
			}, true
		}
	}
	if m := symbolConvPattern.FindStringSubmatch(message); m != nil {
		amount, err := strconv.ParseFloat(normalizeAmount(m[2]), 64)
		if err == nil {
			return ConversionQuery{
				Amount: amount,
				From:   symbolCurrency[m[1]],
				To:     strings.ToUpper(m[3]),
			}, true
		}
	}
	return ConversionQuery{}, false
}

// ExtractRoute parses "from <origin> to <destination>".
func ExtractRoute(message string) (origin, destination string, ok bool) {
	m := routePattern.FindStringSubmatch(message)
	if m == nil {
		return "", "", false
	}
	origin = strings.TrimSpace(m[1])
	destination = strings.TrimSpace(m[2])
	return origin, destination, origin != "" && destination != ""
}
