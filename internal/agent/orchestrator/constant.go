package orchestrator

import "time"

// Log prefixes
const (
	LogPrefixProcess = "internal.agent.orchestrator.Process"
	LogPrefixSession = "internal.agent.orchestrator.session"
	LogPrefixStore   = "internal.agent.orchestrator.store"
)

// Time context template appended to the system prompt.
const (
	TimeContextTemplate = `

[Current date context]
- Today: %s (%s)
- This week: %s to %s
- Tomorrow: %s
Resolve relative dates yourself and write dates as YYYY-MM-DD.`
)

// System prompt
const (
	DefaultSystemPrompt = `You are a friendly travel-planning assistant.
You help travellers with itineraries, expenses, packing, flights, hotels, weather and currency questions.
Keep answers short and practical. If you are unsure about live data such as prices or schedules, say so.`
)

// User-facing apologies. History is left untouched when these are returned.
const (
	ApologyNetwork = "Sorry, I couldn't reach the assistant service. Please check your connection and try again."
	ApologyGeneric = "Sorry, something went wrong while answering. Please try again."
)

// Defaults
const (
	DefaultSessionTTL    = 30 * time.Minute
	DefaultMaxSessions   = 1000
	DefaultHistoryWindow = 20
	DefaultCallTimeout   = 30 * time.Second
	DefaultTimezone      = "UTC"

	// maxSessionHistory bounds the in-memory history; older turns stay in the store.
	maxSessionHistory = 200
	storeTimeout      = 5 * time.Second
)
