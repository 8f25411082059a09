package tools

import (
	"context"
	"fmt"
	"strings"

	"travel-planner/internal/agent"
	"travel-planner/internal/router"
	"travel-planner/pkg/log"
	"travel-planner/pkg/openweather"
)

const (
	WeatherToolName = "weather"
	memoCity        = "city"
	fieldCity       = "city"
)

var weatherKeywords = []string{
	"weather", "temperature", "forecast for", "forecast in", "weather forecast",
	"is it raining", "will it rain", "is it sunny", "will it be sunny", "how hot", "how cold",
}

// WeatherClient reads current conditions for a city.
type WeatherClient interface {
	Current(ctx context.Context, city string) (openweather.Current, error)
}

// WeatherTool answers weather questions. The last city asked about is
// remembered so "and tomorrow's weather?" style follow-ups work.
type WeatherTool struct {
	client WeatherClient
	l      log.Logger
}

func NewWeatherTool(client WeatherClient, l log.Logger) *WeatherTool {
	return &WeatherTool{client: client, l: l}
}

func (t *WeatherTool) Name() string {
	return WeatherToolName
}

func (t *WeatherTool) Description() string {
	return "Current weather for a city, e.g. \"What's the weather in Paris?\""
}

func (t *WeatherTool) Detect(message string) (map[string]string, bool) {
	lower := strings.ToLower(message)
	for _, k := range weatherKeywords {
		if strings.Contains(lower, k) {
			fields := map[string]string{}
			if city := router.ExtractCity(message); city != "" {
				fields[fieldCity] = city
			}
			return fields, true
		}
	}
	return nil, false
}

func (t *WeatherTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	city := call.Fields[fieldCity]
	if city == "" {
		city = call.Memo[memoCity]
	}
	if city == "" {
		return agent.Answer("Which city would you like the weather for? Try \"weather in Lisbon\"."), nil
	}

	t.l.Infof(ctx, "weather: city=%s", city)

	current, err := t.client.Current(ctx, city)
	if err != nil {
		kind := classify(err)
		t.l.Warnf(ctx, "weather: city=%s kind=%s: %v", city, kind, err)
		return agent.Failed(kind, agent.FailureMessage(kind, "weather", city)), nil
	}

	res := agent.Answer(formatWeather(current))
	res.Memo = map[string]string{memoCity: city}
	res.Data = current
	return res, nil
}

func formatWeather(c openweather.Current) string {
	unit := "°C"
	if c.Units == "imperial" {
		unit = "°F"
	}
	place := c.City
	if c.Country != "" {
		place += ", " + c.Country
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Weather in %s: %.0f%s", place, c.Temperature, unit)
	if c.Description != "" {
		fmt.Fprintf(&sb, ", %s", c.Description)
	}
	fmt.Fprintf(&sb, ". Feels like %.0f%s, humidity %d%%.", c.FeelsLike, unit, c.Humidity)
	return sb.String()
}

var (
	_ agent.Tool     = (*WeatherTool)(nil)
	_ agent.Detector = (*WeatherTool)(nil)
)
