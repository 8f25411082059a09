package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travel-planner/config"
	"travel-planner/internal/expense"
	"travel-planner/internal/middleware"
	"travel-planner/internal/model"
	"travel-planner/pkg/log"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Create(ctx context.Context, input expense.CreateInput) (expense.CreateOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(expense.CreateOutput), args.Error(1)
}

func (m *mockUseCase) List(ctx context.Context, input expense.ListInput) (expense.ListOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(expense.ListOutput), args.Error(1)
}

func (m *mockUseCase) Summary(ctx context.Context, input expense.SummaryInput) (expense.SummaryOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(expense.SummaryOutput), args.Error(1)
}

func setup(uc *mockUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Environment.Name = "development"
	mw := middleware.New(log.NewNop(), cfg)

	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/trips/:trip_id"), New(log.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserID, "user-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreate(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	uc.On("Create", mock.Anything, mock.MatchedBy(func(in expense.CreateInput) bool {
		return in.TripID == "trip-1" && in.Scope.UserID == "user-1" && in.Currency == "EUR" && in.Amount == 92
	})).Return(expense.CreateOutput{Expense: expense.Expense{ID: "e1", Amount: 100, Category: expense.CategoryFood}}, nil)

	w := do(r, http.MethodPost, "/api/v1/trips/trip-1/expenses", `{"description":"dinner","amount":92,"currency":"eur","category":"food"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Data createResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "e1", body.Data.Expense.ID)
	assert.Equal(t, 100.0, body.Data.Expense.Amount)
}

func TestCreate_BadBody(t *testing.T) {
	r := setup(&mockUseCase{})

	w := do(r, http.MethodPost, "/api/v1/trips/trip-1/expenses", `{"amount":-3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "120001")
}

func TestCreate_UnmappedErrorIs500(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("Create", mock.Anything, mock.Anything).Return(expense.CreateOutput{}, errors.New("mongo down"))

	w := do(r, http.MethodPost, "/api/v1/trips/trip-1/expenses", `{"amount":5}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "mongo down")
}

func TestSummary(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("Summary", mock.Anything, expense.SummaryInput{
		Scope:           model.Scope{UserID: "user-1", Username: "user-1"},
		TripID:          "trip-1",
		DisplayCurrency: "EUR",
	}).Return(expense.SummaryOutput{
		ByCategory:      map[expense.Category]float64{expense.CategoryFood: 46},
		Total:           46,
		Count:           1,
		DisplayCurrency: "EUR",
	}, nil)

	w := do(r, http.MethodGet, "/api/v1/trips/trip-1/expenses/summary?currency=EUR", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Food":46`)
}

func TestList_Unauthenticated(t *testing.T) {
	r := setup(&mockUseCase{})
	req := httptest.NewRequest(http.MethodGet, "/api/v1/trips/trip-1/expenses", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
