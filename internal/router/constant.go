package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Scoring configuration
const (
	// GeneralChatThreshold is the minimum winning score for a tool intent.
	GeneralChatThreshold = 0.10

	longKeywordLen   = 7
	mediumKeywordLen = 5

	longKeywordWeight   = 2.0
	mediumKeywordWeight = 1.5
	shortKeywordWeight  = 1.0

	matchesForFullBoost = 3.0
	maxBoost            = 1.5
)
