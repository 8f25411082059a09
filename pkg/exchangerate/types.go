package exchangerate

import "time"

// Config configures the client.
type Config struct {
	BaseURL   string
	AccessKey string
	Timeout   time.Duration
}

// Latest is a validated rate snapshot.
type Latest struct {
	Base  string
	Date  string
	Rates map[string]float64
}

type latestResponse struct {
	Success *bool              `json:"success"`
	Base    string             `json:"base"`
	Source  string             `json:"source"`
	Date    string             `json:"date"`
	Rates   map[string]float64 `json:"rates"`
	Error   *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error,omitempty"`
}
