package httpserver

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/config"
	"travel-planner/internal/agent"
	"travel-planner/internal/currency"
	"travel-planner/internal/middleware"
	"travel-planner/pkg/log"
)

func newTestServer(t *testing.T, origins []string) *HTTPServer {
	t.Helper()
	appCfg := &config.Config{}
	appCfg.Environment.Name = "development"

	srv, err := New(log.NewNop(), Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           "test",
		Environment:    "development",
		AllowedOrigins: origins,
		AppConfig:      appCfg,
		Currency:       currency.New(log.NewNop(), nil, currency.Config{}),
	})
	require.NoError(t, err)
	return srv
}

func get(srv *HTTPServer, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(srv, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), ServiceName, path)
	}
	assert.Contains(t, get(srv, "/health", nil).Body.String(), `"live":false`)
}

func TestDomainRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/currency/convert", strings.NewReader(`{"amount":1,"from":"USD","to":"EUR"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	// no use cases wired
	assert.Equal(t, http.StatusNotFound, get(srv, "/api/v1/trips/t1/expenses", nil).Code)
	assert.Equal(t, http.StatusNotFound, get(srv, "/api/v1/chat/sessions/s1/history", nil).Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, []string{"https://app.example.com"})

	allowed := get(srv, "/live", http.Header{"Origin": {"https://app.example.com"}})
	assert.Equal(t, "https://app.example.com", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := get(srv, "/live", http.Header{"Origin": {"https://evil.example.com"}})
	assert.Equal(t, http.StatusForbidden, denied.Code)

	assert.True(t, srv.originAllowed("https://app.example.com"))
	assert.False(t, srv.originAllowed("https://evil.example.com"))
	assert.True(t, newTestServer(t, []string{"*"}).originAllowed("https://any.example.com"))
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: "test", Port: 8080})
	assert.Error(t, err)
}

type nopSender struct{}

func (nopSender) SendMessage(ctx context.Context, chatID int64, text string) error { return nil }

type nopAssistant struct {
	agent.Assistant
}

func TestTelegramRoute(t *testing.T) {
	appCfg := &config.Config{}
	appCfg.Environment.Name = "development"
	cfg := Config{
		Logger:         log.NewNop(),
		Port:           8080,
		Mode:           "test",
		AppConfig:      appCfg,
		Currency:       currency.New(log.NewNop(), nil, currency.Config{}),
		Assistant:      nopAssistant{},
		TelegramSecret: "s3cret",
	}

	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id":1}`))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	cfg.Telegram = nopSender{}
	srv, err = New(log.NewNop(), cfg)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodPost, "/webhook/telegram", strings.NewReader(`{"update_id":1}`))
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Len(t, srv.pending.waits, 1)
}

func TestDrainer(t *testing.T) {
	t.Run("waits for background work", func(t *testing.T) {
		d := &drainer{}
		release := make(chan struct{})
		finished := false
		d.add(func() {
			<-release
			finished = true
		})

		go close(release)
		require.NoError(t, d.wait(context.Background()))
		assert.True(t, finished)
	})

	t.Run("gives up at the deadline", func(t *testing.T) {
		d := &drainer{}
		block := make(chan struct{})
		defer close(block)
		d.add(func() { <-block })

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		assert.ErrorIs(t, d.wait(ctx), context.DeadlineExceeded)
	})

	t.Run("nothing registered", func(t *testing.T) {
		assert.NoError(t, (&drainer{}).wait(context.Background()))
	})
}
