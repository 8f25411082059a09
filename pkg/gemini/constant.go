package gemini

import "time"

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// Gemini names the two conversation sides "user" and "model".
	RoleUser  = "user"
	RoleModel = "model"
)
