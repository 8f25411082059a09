package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travel-planner/config"
	"travel-planner/internal/checklist"
	"travel-planner/internal/middleware"
	"travel-planner/pkg/log"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Add(ctx context.Context, input checklist.AddInput) (checklist.PackingItem, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.PackingItem), args.Error(1)
}

func (m *mockUseCase) List(ctx context.Context, input checklist.ListInput) (checklist.ListOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.ListOutput), args.Error(1)
}

func (m *mockUseCase) SetPacked(ctx context.Context, input checklist.SetPackedInput) (checklist.PackingItem, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.PackingItem), args.Error(1)
}

func (m *mockUseCase) Import(ctx context.Context, input checklist.ImportInput) (checklist.ImportOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.ImportOutput), args.Error(1)
}

func (m *mockUseCase) Export(ctx context.Context, input checklist.ExportInput) (checklist.ExportOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.ExportOutput), args.Error(1)
}

func (m *mockUseCase) Progress(ctx context.Context, input checklist.ProgressInput) (checklist.ProgressOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.ProgressOutput), args.Error(1)
}

func (m *mockUseCase) Suggest(ctx context.Context, input checklist.SuggestInput) (checklist.SuggestOutput, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(checklist.SuggestOutput), args.Error(1)
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

func TestSetPacked(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("SetPacked", mock.Anything, mock.MatchedBy(func(in checklist.SetPackedInput) bool {
		return in.ID == "p1" && in.TripID == "trip-1" && !in.Packed
	})).Return(checklist.PackingItem{ID: "p1", Name: "Passport"}, nil)

	w := do(r, http.MethodPatch, "/api/v1/trips/trip-1/packing/p1", `{"packed":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"packed":false`)
}

func TestSetPacked_MissingField(t *testing.T) {
	w := do(setup(&mockUseCase{}), http.MethodPatch, "/api/v1/trips/trip-1/packing/p1", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "140001")
}

func TestSetPacked_NotFound(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("SetPacked", mock.Anything, mock.Anything).Return(checklist.PackingItem{}, checklist.ErrItemNotFound)

	w := do(r, http.MethodPatch, "/api/v1/trips/trip-1/packing/nope", `{"packed":true}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestImport_Empty(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("Import", mock.Anything, mock.Anything).Return(checklist.ImportOutput{}, checklist.ErrEmptyImport)

	w := do(r, http.MethodPost, "/api/v1/trips/trip-1/packing/import", `{"markdown":"hello"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "140005")
}

func TestExport(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("Export", mock.Anything, mock.Anything).Return(checklist.ExportOutput{Markdown: "## Documents\n- [x] Passport\n"}, nil)

	w := do(r, http.MethodGet, "/api/v1/trips/trip-1/packing/export", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "## Documents\n- [x] Passport\n", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Type"), "text/markdown")
}

func TestSuggest(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)
	uc.On("Suggest", mock.Anything, mock.MatchedBy(func(in checklist.SuggestInput) bool {
		return in.Category == "documents"
	})).Return(checklist.SuggestOutput{Suggestions: map[checklist.Category][]string{
		checklist.CategoryDocuments: {"Visa"},
	}}, nil)

	w := do(r, http.MethodGet, "/api/v1/trips/trip-1/packing/suggestions?category=documents", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"Documents":["Visa"]`)
}
