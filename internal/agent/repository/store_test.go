package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/agent"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) LoadTurns(ctx context.Context, opt LoadTurnsOptions) ([]agent.Turn, error) {
	args := m.Called(ctx, opt)
	turns, _ := args.Get(0).([]agent.Turn)
	return turns, args.Error(1)
}

func (m *mockRepo) AppendTurns(ctx context.Context, opt AppendTurnsOptions) error {
	return m.Called(ctx, opt).Error(0)
}

func (m *mockRepo) ClearTurns(ctx context.Context, opt ClearTurnsOptions) error {
	return m.Called(ctx, opt).Error(0)
}

func TestHistoryStore(t *testing.T) {
	r := &mockRepo{}
	store := HistoryStore{Repo: r}
	ctx := context.Background()
	turns := []agent.Turn{{Role: agent.RoleUser, Content: "hi"}}

	r.On("LoadTurns", ctx, LoadTurnsOptions{SessionID: "s1", UserID: "u1", Limit: 50}).Return(turns, nil)
	r.On("AppendTurns", ctx, AppendTurnsOptions{SessionID: "s1", UserID: "u1", Turns: turns}).Return(nil)
	r.On("ClearTurns", ctx, ClearTurnsOptions{SessionID: "s1", UserID: "u1"}).Return(ErrFailedToDelete)

	got, err := store.Load(ctx, "s1", "u1", 50)
	require.NoError(t, err)
	assert.Equal(t, turns, got)

	require.NoError(t, store.Append(ctx, "s1", "u1", turns...))
	require.NoError(t, store.Append(ctx, "s1", "u1"))
	assert.ErrorIs(t, store.Clear(ctx, "s1", "u1"), ErrFailedToDelete)

	r.AssertNumberOfCalls(t, "AppendTurns", 1)
	r.AssertExpectations(t)
}
