package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/config"
	"travel-planner/pkg/log"
)

// mockProvider is a test implementation of the Provider interface
type mockProvider struct {
	name      string
	err       error
	reply     string
	delay     time.Duration
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if m.err != nil {
		return nil, m.err
	}
	return &Response{
		Content:      TextMessage(RoleAssistant, m.reply),
		ProviderName: m.name,
		ModelName:    m.name + "-model",
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.name + "-model" }

// recordingLogger counts info and warn lines.
type recordingLogger struct {
	log.Logger
	mu    sync.Mutex
	infos []string
	warns []string
}

func newRecordingLogger() *recordingLogger {
	return &recordingLogger{Logger: log.NewNop()}
}

func (l *recordingLogger) Infof(ctx context.Context, template string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, fmt.Sprintf(template, args...))
}

func (l *recordingLogger) Warnf(ctx context.Context, template string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, fmt.Sprintf(template, args...))
}

func helloRequest() *Request {
	return &Request{Messages: []Message{TextMessage(RoleUser, "Hello")}}
}

func TestGenerateContent_SuccessWithPrimaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", reply: "Hello from primary"}
	logger := newRecordingLogger()
	manager := NewManager([]Provider{primary}, &Config{RetryAttempts: 3, RetryDelay: time.Millisecond}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())

	require.NoError(t, err)
	assert.Equal(t, "primary", resp.ProviderName)
	assert.Equal(t, "Hello from primary", resp.Text())
	assert.Equal(t, 1, primary.callCount)
	assert.Len(t, logger.infos, 1)
	assert.Empty(t, logger.warns)
	assert.Contains(t, logger.infos[0], "input_tokens=0")
}

func TestGenerateContent_SingleAttemptByDefault(t *testing.T) {
	primary := &mockProvider{name: "primary", err: errors.New("boom")}
	secondary := &mockProvider{name: "secondary", reply: "hi"}
	manager := NewManager([]Provider{primary, secondary}, &Config{}, newRecordingLogger())

	_, err := manager.GenerateContent(context.Background(), helloRequest())

	require.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.Equal(t, 1, primary.callCount)
	assert.Zero(t, secondary.callCount)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "primary", provErr.Provider)
}

func TestGenerateContent_FallbackToSecondaryProvider(t *testing.T) {
	primary := &mockProvider{name: "primary", err: errors.New("mock provider error")}
	secondary := &mockProvider{name: "secondary", reply: "Hello from secondary"}
	logger := newRecordingLogger()
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())

	require.NoError(t, err)
	assert.Equal(t, "secondary", resp.ProviderName)
	assert.Equal(t, 2, primary.callCount)
	assert.Equal(t, 1, secondary.callCount)
	assert.Len(t, logger.infos, 1)
	assert.Len(t, logger.warns, 1)
}

func TestGenerateContent_AllProvidersFail(t *testing.T) {
	cause := errors.New("upstream down")
	primary := &mockProvider{name: "primary", err: cause}
	secondary := &mockProvider{name: "secondary", err: cause}
	logger := newRecordingLogger()
	manager := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, logger)

	resp, err := manager.GenerateContent(context.Background(), helloRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAllProvidersFailed)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 2, primary.callCount)
	assert.Equal(t, 2, secondary.callCount)
	assert.Len(t, logger.warns, 2)
}

func TestGenerateContent_EmptyReplyIsFailure(t *testing.T) {
	primary := &mockProvider{name: "primary", reply: "   "}
	manager := NewManager([]Provider{primary}, &Config{}, newRecordingLogger())

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	assert.ErrorIs(t, err, ErrEmptyReply)
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	slow := &mockProvider{name: "slow", reply: "late", delay: time.Second}
	manager := NewManager([]Provider{slow}, &Config{MaxTotalTimeout: 20 * time.Millisecond}, newRecordingLogger())

	_, err := manager.GenerateContent(context.Background(), helloRequest())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	manager := NewManager(nil, nil, newRecordingLogger())

	resp, err := manager.GenerateContent(context.Background(), helloRequest())
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)
}

func TestInitializeProviders(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 2, APIKey: "q"},
			{Name: "gemini", Enabled: true, Priority: 1, APIKey: "g", Model: "gemini-2.5-flash"},
			{Name: "deepseek", Enabled: false, Priority: 0, APIKey: "d"},
			{Name: "mystery", Enabled: true, Priority: 3, APIKey: "m"},
			{Name: "deepseek", Enabled: true, Priority: 4},
		},
	}
	logger := newRecordingLogger()

	providers, err := InitializeProviders(cfg, logger)
	require.NoError(t, err)
	require.Len(t, providers, 2)
	assert.Equal(t, "gemini", providers[0].Name())
	assert.Equal(t, "qwen", providers[1].Name())
	assert.Equal(t, "qwen-plus", providers[1].Model())
	assert.Len(t, logger.warns, 2)
}

func TestInitializeProviders_NoneEnabled(t *testing.T) {
	_, err := InitializeProviders(&config.LLMConfig{
		Providers: []config.ProviderConfig{{Name: "gemini", APIKey: "g"}},
	}, newRecordingLogger())
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	_, err = InitializeProviders(nil, newRecordingLogger())
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)
}

func TestManagerConfig(t *testing.T) {
	mc := ManagerConfig(&config.LLMConfig{RetryAttempts: 2, RetryDelay: "250ms", MaxTotalTimeout: "bogus"})
	assert.Equal(t, 2, mc.RetryAttempts)
	assert.Equal(t, 250*time.Millisecond, mc.RetryDelay)
	assert.Equal(t, 30*time.Second, mc.MaxTotalTimeout)
}
