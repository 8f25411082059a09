// Package app wires configuration into the services shared by the API server and the CLI.
package app

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"travel-planner/config"
	"travel-planner/internal/agent"
	"travel-planner/internal/agent/orchestrator"
	chatRepo "travel-planner/internal/agent/repository"
	chatMongo "travel-planner/internal/agent/repository/mongo"
	"travel-planner/internal/agent/tools"
	"travel-planner/internal/checklist"
	checklistMongo "travel-planner/internal/checklist/repository/mongo"
	checklistUC "travel-planner/internal/checklist/usecase"
	"travel-planner/internal/currency"
	"travel-planner/internal/expense"
	expenseMongo "travel-planner/internal/expense/repository/mongo"
	expenseUC "travel-planner/internal/expense/usecase"
	"travel-planner/internal/itinerary"
	itineraryMongo "travel-planner/internal/itinerary/repository/mongo"
	itineraryUC "travel-planner/internal/itinerary/usecase"
	"travel-planner/internal/router"
	"travel-planner/pkg/amadeus"
	"travel-planner/pkg/datemath"
	"travel-planner/pkg/exchangerate"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
	"travel-planner/pkg/mongodb"
	"travel-planner/pkg/openweather"
	"travel-planner/pkg/telegram"
)

// Components are the wired services. Trip use cases are nil when no MongoDB URI is configured.
type Components struct {
	MongoDB   *mongo.Database
	Currency  currency.Service
	Router    router.Router
	Expense   expense.UseCase
	Itinerary itinerary.UseCase
	Checklist checklist.UseCase
	Assistant *orchestrator.Orchestrator
	// Telegram is nil unless a bot token is configured.
	Telegram *telegram.Bot

	close func(ctx context.Context) error
}

// Close releases the database connection.
func (c *Components) Close(ctx context.Context) error {
	if c.close == nil {
		return nil
	}
	return c.close(ctx)
}

// Build connects the configured backends. Optional services that are not
// configured are logged and left out; only a failing MongoDB connection is fatal.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*Components, error) {
	c := &Components{}

	// 1. Currency engine, seeded with the static table
	c.Currency = NewCurrency(ctx, cfg, l)

	// 2. Storage
	if cfg.Mongo.URI != "" {
		db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database}, l)
		if err != nil {
			return nil, err
		}
		c.MongoDB = db
		c.close = func(ctx context.Context) error { return db.Client().Disconnect(ctx) }
	} else {
		l.Warn(ctx, "Mongo URI missing, trip data and chat history are disabled")
	}

	// 3. Trip domains
	dates, err := datemath.NewParser(cfg.Environment.Timezone)
	if err != nil {
		l.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	if c.MongoDB != nil {
		c.Expense = expenseUC.New(expenseMongo.New(c.MongoDB, l), c.Currency, l)
		c.Itinerary = itineraryUC.New(itineraryMongo.New(c.MongoDB, l), calendar(ctx, cfg, l), dates,
			itineraryUC.Config{CalendarID: cfg.GoogleCalendar.CalendarID}, l)
		c.Checklist = checklistUC.New(checklistMongo.New(c.MongoDB, l), l)
	}

	// 4. Chat
	c.Router = router.New(l)

	registry := agent.NewToolRegistry()
	if err := tools.Register(registry, toolSet(ctx, cfg, c, dates, l)); err != nil {
		return nil, err
	}

	var store orchestrator.HistoryStore
	if c.MongoDB != nil {
		store = chatRepo.HistoryStore{Repo: chatMongo.New(c.MongoDB, l)}
	}

	c.Assistant = orchestrator.New(c.Router, registry, chatModel(ctx, cfg, l), store, orchestrator.Config{
		SessionTTL:    cfg.Chat.SessionTTL,
		MaxSessions:   cfg.Chat.MaxSessions,
		HistoryWindow: cfg.Chat.HistoryWindow,
		SystemPrompt:  cfg.Chat.SystemPrompt,
		Timezone:      cfg.Environment.Timezone,
	}, l)

	// 5. Telegram channel
	if cfg.Telegram.BotToken != "" {
		bot, err := telegram.New(telegram.Config{
			Token:   cfg.Telegram.BotToken,
			BaseURL: cfg.Telegram.BaseURL,
			Timeout: cfg.Telegram.Timeout,
		})
		if err != nil {
			return nil, err
		}
		c.Telegram = bot
		l.Info(ctx, "Telegram bot initialized")
	}

	return c, nil
}

// NewCurrency builds the rate engine. Without an access key it serves the static table.
func NewCurrency(ctx context.Context, cfg *config.Config, l log.Logger) currency.Service {
	var provider currency.RateProvider
	if cfg.Currency.AccessKey != "" {
		provider = exchangerate.New(exchangerate.Config{
			BaseURL:   cfg.Currency.BaseURL,
			AccessKey: cfg.Currency.AccessKey,
			Timeout:   cfg.Currency.Timeout,
		})
	} else {
		l.Warn(ctx, "Currency access key missing, serving the static rate table")
	}
	return currency.New(l, provider, currency.Config{
		CacheTTL:       cfg.Currency.CacheTTL,
		RefreshTimeout: cfg.Currency.Timeout,
	})
}

func toolSet(ctx context.Context, cfg *config.Config, c *Components, dates *datemath.Parser, l log.Logger) tools.Set {
	set := tools.Set{Currency: tools.NewCurrencyTool(c.Currency, l)}

	if weather, err := openweather.New(openweather.Config{
		BaseURL: cfg.Weather.BaseURL,
		APIKey:  cfg.Weather.APIKey,
		Units:   cfg.Weather.Units,
		Timeout: cfg.Weather.Timeout,
	}); err != nil {
		l.Warnf(ctx, "Weather tool disabled: %v", err)
	} else {
		set.Weather = tools.NewWeatherTool(weather, l)
	}

	if travel, err := amadeus.New(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.Timeout,
	}); err != nil {
		l.Warnf(ctx, "Flight and hotel tools disabled: %v", err)
	} else {
		set.Flight = tools.NewFlightTool(travel, dates, l)
		set.Hotel = tools.NewHotelTool(travel, dates, l)
	}

	if c.Expense != nil {
		set.Expense = tools.NewLogExpenseTool(c.Expense, l)
	}
	if c.Itinerary != nil {
		set.Itinerary = tools.NewShowItineraryTool(c.Itinerary, l)
	}
	if c.Checklist != nil {
		set.Packing = tools.NewPackingTool(c.Checklist, l)
	}
	return set
}

// chatModel returns nil when no provider is usable; the assistant then answers with tools only.
func chatModel(ctx context.Context, cfg *config.Config, l log.Logger) llmprovider.Generator {
	providers, err := llmprovider.InitializeProviders(&cfg.LLM, l)
	if err != nil {
		if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
			l.Warn(ctx, "No LLM provider configured, general chat is disabled")
		} else {
			l.Warnf(ctx, "LLM providers unavailable: %v", err)
		}
		return nil
	}
	m := llmprovider.NewManager(providers, llmprovider.ManagerConfig(&cfg.LLM), l)
	l.Infof(ctx, "LLM providers: %v", m.Providers())
	return m
}

// calendar returns nil unless Google Calendar credentials load.
func calendar(ctx context.Context, cfg *config.Config, l log.Logger) itineraryUC.Calendar {
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return nil
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		l.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}
	l.Info(ctx, "Google Calendar initialized")
	return client
}
