package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/config"
	"travel-planner/internal/currency"
	"travel-planner/internal/middleware"
	"travel-planner/pkg/exchangerate"
	"travel-planner/pkg/log"
)

type failingProvider struct {
	calls int
}

func (p *failingProvider) Latest(ctx context.Context) (exchangerate.Latest, error) {
	p.calls++
	return exchangerate.Latest{}, errors.New("offline")
}

func setup(svc currency.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.NewNop(), &config.Config{})

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), svc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConvert(t *testing.T) {
	r := setup(currency.New(log.NewNop(), nil, currency.Config{}))

	w := do(r, http.MethodPost, "/api/v1/currency/convert", `{"amount":100,"from":"usd","to":"EUR"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data convertResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 92.0, body.Data.Amount)
	assert.Equal(t, "92.00 EUR", body.Data.Formatted)
	assert.Equal(t, "USD", body.Data.From)
	assert.False(t, body.Data.Live)
	assert.False(t, body.Data.Fallback)
}

func TestConvert_UnknownCodeIsFlagged(t *testing.T) {
	r := setup(currency.New(log.NewNop(), nil, currency.Config{}))

	w := do(r, http.MethodPost, "/api/v1/currency/convert", `{"amount":10,"from":"XYZ","to":"USD"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"fallback":true`)
	assert.Contains(t, w.Body.String(), `"unknown_codes":["XYZ"]`)
	assert.Contains(t, w.Body.String(), `"amount":10`)
}

func TestConvert_WrongBody(t *testing.T) {
	r := setup(currency.New(log.NewNop(), nil, currency.Config{}))

	for _, body := range []string{`{"from":"USD","to":"EUR"}`, `{"amount":1,"from":"US","to":"EUR"}`, `nope`} {
		w := do(r, http.MethodPost, "/api/v1/currency/convert", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Contains(t, w.Body.String(), "110001")
	}
}

func TestConvert_ZeroAmountAllowed(t *testing.T) {
	r := setup(currency.New(log.NewNop(), nil, currency.Config{}))
	w := do(r, http.MethodPost, "/api/v1/currency/convert", `{"amount":0,"from":"USD","to":"JPY"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRates_ProviderDownServesFallback(t *testing.T) {
	p := &failingProvider{}
	svc := currency.New(log.NewNop(), p, currency.Config{})
	h := New(log.NewNop(), svc)
	h.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), &config.Config{}))

	w := do(r, http.MethodGet, "/api/v1/currency/rates?codes=eur,xyz", "")

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Data ratesResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "USD", body.Data.Base)
	assert.False(t, body.Data.Live)
	assert.Nil(t, body.Data.FetchedAt)
	assert.Equal(t, map[string]float64{"EUR": 0.92}, body.Data.Rates)
	assert.Equal(t, []string{"XYZ"}, body.Data.Missing)
	assert.Equal(t, 1, p.calls)
}

func TestRatesReqCodes(t *testing.T) {
	assert.Equal(t, []string{"EUR", "JPY"}, ratesReq{Codes: " eur, ,jpy"}.codes())
	assert.Empty(t, ratesReq{}.codes())
}
