package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/itinerary"
	repo "travel-planner/internal/itinerary/repository"
	"travel-planner/internal/model"
	"travel-planner/pkg/datemath"
	"travel-planner/pkg/gcalendar"
	"travel-planner/pkg/log"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (itinerary.Item, error) {
	args := m.Called(ctx, opt)
	return args.Get(0).(itinerary.Item), args.Error(1)
}

func (m *mockRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]itinerary.Item, error) {
	args := m.Called(ctx, opt)
	items, _ := args.Get(0).([]itinerary.Item)
	return items, args.Error(1)
}

type mockCalendar struct {
	mock.Mock
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	args := m.Called(ctx, req)
	ev, _ := args.Get(0).(*gcalendar.Event)
	return ev, args.Error(1)
}

var (
	testScope = model.Scope{UserID: "user-1"}
	fixedNow  = time.Date(2026, 5, 6, 10, 30, 0, 0, time.UTC)
	museum    = time.Date(2026, 5, 7, 9, 0, 0, 0, time.UTC)
)

func newTestUseCase(t *testing.T, r *mockRepo, cal Calendar) *implUseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)
	uc := New(r, cal, dates, Config{CalendarID: "primary"}, log.NewNop()).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestCreate_DefaultsEndAndType(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil)

	r.On("CreateItem", mock.Anything, mock.MatchedBy(func(opt repo.CreateItemOptions) bool {
		return opt.Title == "Louvre" &&
			opt.Type == itinerary.TypeSightseeing &&
			opt.EndTime.Equal(museum.Add(time.Hour)) &&
			opt.CalendarEventID == "" &&
			opt.CreatedAt.Equal(fixedNow)
	})).Return(itinerary.Item{ID: "i1", Title: "Louvre"}, nil)

	out, err := uc.Create(context.Background(), itinerary.CreateInput{
		Scope:     testScope,
		TripID:    "trip-1",
		Title:     " Louvre ",
		Type:      "Sightseeing",
		StartTime: museum,
	})

	require.NoError(t, err)
	assert.Equal(t, "i1", out.Item.ID)
	assert.False(t, out.CalendarSynced)
	assert.Empty(t, out.CalendarError)
	r.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		input itinerary.CreateInput
		err   error
	}{
		{name: "no trip", input: itinerary.CreateInput{Title: "x", StartTime: museum}, err: itinerary.ErrTripRequired},
		{name: "no title", input: itinerary.CreateInput{TripID: "t", StartTime: museum}, err: itinerary.ErrTitleRequired},
		{name: "no start", input: itinerary.CreateInput{TripID: "t", Title: "x"}, err: itinerary.ErrStartRequired},
		{
			name:  "end before start",
			input: itinerary.CreateInput{TripID: "t", Title: "x", StartTime: museum, EndTime: museum.Add(-time.Minute)},
			err:   itinerary.ErrInvalidTimeRange,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, tt.input)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestCreate_SyncsCalendar(t *testing.T) {
	r := &mockRepo{}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, r, cal)

	cal.On("CreateEvent", mock.Anything, mock.MatchedBy(func(req gcalendar.CreateEventRequest) bool {
		return req.CalendarID == "primary" && req.Summary == "Louvre" && req.Timezone == "UTC"
	})).Return(&gcalendar.Event{ID: "ev-1"}, nil)
	r.On("CreateItem", mock.Anything, mock.MatchedBy(func(opt repo.CreateItemOptions) bool {
		return opt.CalendarEventID == "ev-1"
	})).Return(itinerary.Item{ID: "i1", CalendarEventID: "ev-1"}, nil)

	out, err := uc.Create(context.Background(), itinerary.CreateInput{
		Scope: testScope, TripID: "trip-1", Title: "Louvre", StartTime: museum, SyncCalendar: true,
	})

	require.NoError(t, err)
	assert.True(t, out.CalendarSynced)
	cal.AssertExpectations(t)
}

func TestCreate_CalendarFailureStillSaves(t *testing.T) {
	r := &mockRepo{}
	cal := &mockCalendar{}
	uc := newTestUseCase(t, r, cal)

	cal.On("CreateEvent", mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))
	r.On("CreateItem", mock.Anything, mock.Anything).Return(itinerary.Item{ID: "i1"}, nil)

	out, err := uc.Create(context.Background(), itinerary.CreateInput{
		Scope: testScope, TripID: "trip-1", Title: "Louvre", StartTime: museum, SyncCalendar: true,
	})

	require.NoError(t, err)
	assert.False(t, out.CalendarSynced)
	assert.Contains(t, out.CalendarError, "quota exceeded")
}

func TestCreate_SyncWithoutCalendar(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil)
	r.On("CreateItem", mock.Anything, mock.Anything).Return(itinerary.Item{ID: "i1"}, nil)

	out, err := uc.Create(context.Background(), itinerary.CreateInput{
		Scope: testScope, TripID: "trip-1", Title: "Louvre", StartTime: museum, SyncCalendar: true,
	})

	require.NoError(t, err)
	assert.False(t, out.CalendarSynced)
	assert.Equal(t, errCalendarNotConfigured.Error(), out.CalendarError)
}

func TestList_ResolvesWindow(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil)

	tomorrow := time.Date(2026, 5, 7, 0, 0, 0, 0, time.UTC)
	r.On("ListItems", mock.Anything, repo.ListItemsOptions{
		TripID: "trip-1",
		UserID: "user-1",
		From:   tomorrow,
		To:     tomorrow.AddDate(0, 0, 1),
		Type:   itinerary.TypeDining,
	}).Return([]itinerary.Item{{ID: "i1"}}, nil)

	out, err := uc.List(context.Background(), itinerary.ListInput{
		Scope: testScope, TripID: "trip-1", When: "Tomorrow", Type: "dining",
	})

	require.NoError(t, err)
	require.NotNil(t, out.Window)
	assert.True(t, out.Window.Start.Equal(tomorrow))
	assert.Len(t, out.Items, 1)
}

func TestList_Everything(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(t, r, nil)
	r.On("ListItems", mock.Anything, repo.ListItemsOptions{TripID: "trip-1", UserID: "user-1"}).Return(nil, nil)

	out, err := uc.List(context.Background(), itinerary.ListInput{Scope: testScope, TripID: "trip-1"})
	require.NoError(t, err)
	assert.Nil(t, out.Window)
	assert.Empty(t, out.Items)
}

func TestList_UnknownPeriod(t *testing.T) {
	uc := newTestUseCase(t, &mockRepo{}, nil)
	_, err := uc.List(context.Background(), itinerary.ListInput{Scope: testScope, TripID: "trip-1", When: "someday"})
	assert.ErrorIs(t, err, itinerary.ErrUnknownPeriod)
}
