package telegram

import "time"

const (
	// DefaultBaseURL is the Bot API endpoint; the token is appended per bot.
	DefaultBaseURL = "https://api.telegram.org"

	// DefaultTimeout bounds every call
	DefaultTimeout = 10 * time.Second

	// SecretHeader carries the secret_token registered with setWebhook.
	SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

	// MaxMessageLength is the Bot API limit for one sendMessage text.
	MaxMessageLength = 4096
)
