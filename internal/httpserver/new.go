package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"travel-planner/config"
	"travel-planner/internal/agent"
	telegramDelivery "travel-planner/internal/agent/delivery/telegram"
	"travel-planner/internal/checklist"
	"travel-planner/internal/currency"
	"travel-planner/internal/expense"
	"travel-planner/internal/itinerary"
	"travel-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin            *gin.Engine
	l              log.Logger
	port           int
	mode           string
	environment    string
	allowedOrigins []string
	appConfig      *config.Config

	// Storage, pinged by /ready
	mongoDB *mongo.Database

	// Domains
	currency    currency.Service
	expenseUC   expense.UseCase
	itineraryUC itinerary.UseCase
	checklistUC checklist.UseCase
	assistant   agent.Assistant

	// Telegram channel, optional
	telegram       telegramDelivery.Sender
	telegramSecret string

	// background work drained on shutdown
	pending *drainer
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger         log.Logger
	Port           int
	Mode           string
	Environment    string
	AllowedOrigins []string
	AppConfig      *config.Config

	MongoDB *mongo.Database

	Currency    currency.Service
	ExpenseUC   expense.UseCase
	ItineraryUC itinerary.UseCase
	ChecklistUC checklist.UseCase
	Assistant   agent.Assistant

	Telegram       telegramDelivery.Sender
	TelegramSecret string
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		allowedOrigins: cfg.AllowedOrigins,
		appConfig:      cfg.AppConfig,
		mongoDB:        cfg.MongoDB,
		currency:       cfg.Currency,
		expenseUC:      cfg.ExpenseUC,
		itineraryUC:    cfg.ItineraryUC,
		checklistUC:    cfg.ChecklistUC,
		assistant:      cfg.Assistant,
		telegram:       cfg.Telegram,
		telegramSecret: cfg.TelegramSecret,
		pending:        &drainer{},
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.appConfig == nil {
		return errors.New("app config is required")
	}
	if srv.currency == nil {
		return errors.New("currency service is required")
	}
	return nil
}
