package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "travel-planner/internal/agent/delivery/http"
	chatTelegram "travel-planner/internal/agent/delivery/telegram"
	checklistHTTP "travel-planner/internal/checklist/delivery/http"
	currencyHTTP "travel-planner/internal/currency/delivery/http"
	expenseHTTP "travel-planner/internal/expense/delivery/http"
	itineraryHTTP "travel-planner/internal/itinerary/delivery/http"
	"travel-planner/internal/middleware"
)

// Adding a domain:
//  1. Build its UseCase in cmd/api and pass it through Config.
//  2. Create the HTTP handler: h := mydomainHTTP.New(srv.l, srv.mydomainUC)
//  3. Register the routes:    mydomainHTTP.RegisterRoutes(group, h, mw)

func (srv HTTPServer) setupCurrencyDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	h := currencyHTTP.New(srv.l, srv.currency)
	currencyHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Currency domain registered")
}

// setupTripDomains registers the per-trip routes. Domains without a use case are skipped.
func (srv HTTPServer) setupTripDomains(ctx context.Context, trip *gin.RouterGroup, mw middleware.Middleware) {
	if srv.expenseUC != nil {
		expenseHTTP.RegisterRoutes(trip, expenseHTTP.New(srv.l, srv.expenseUC), mw)
		srv.l.Infof(ctx, "Expense domain registered")
	}
	if srv.itineraryUC != nil {
		itineraryHTTP.RegisterRoutes(trip, itineraryHTTP.New(srv.l, srv.itineraryUC), mw)
		srv.l.Infof(ctx, "Itinerary domain registered")
	}
	if srv.checklistUC != nil {
		checklistHTTP.RegisterRoutes(trip, checklistHTTP.New(srv.l, srv.checklistUC), mw)
		srv.l.Infof(ctx, "Packing domain registered")
	}
}

func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	if srv.assistant == nil {
		srv.l.Infof(ctx, "Chat assistant not configured, skipping chat routes")
		return
	}
	h := chatHTTP.New(srv.l, srv.assistant, srv.originAllowed)
	chatHTTP.RegisterRoutes(api, h, mw)
	srv.l.Infof(ctx, "Chat domain registered")
}

// setupTelegram mounts the bot webhook at the root, outside /api/v1.
func (srv HTTPServer) setupTelegram(ctx context.Context) {
	if srv.telegram == nil || srv.assistant == nil {
		return
	}
	if srv.telegramSecret == "" {
		srv.l.Warnf(ctx, "Telegram webhook secret missing, updates are not authenticated")
	}
	h := chatTelegram.New(srv.l, srv.assistant, srv.telegram, srv.telegramSecret)
	chatTelegram.RegisterRoutes(srv.gin, h)
	srv.pending.add(h.Wait)
	srv.l.Infof(ctx, "Telegram channel registered")
}
