package orchestrator

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-planner/internal/agent"
	"travel-planner/internal/model"
	"travel-planner/internal/router"
	"travel-planner/pkg/llmprovider"
	"travel-planner/pkg/log"
)

var (
	alice = model.Scope{UserID: "alice"}
	bob   = model.Scope{UserID: "bob"}
)

type fixedRouter struct {
	out router.RouterOutput
}

func (r fixedRouter) Classify(ctx context.Context, message string) router.RouterOutput {
	return r.out
}

var generalChat = fixedRouter{out: router.RouterOutput{Intent: router.IntentGeneralChat}}

// fakeLLM echoes the last user message unless err or block is set.
type fakeLLM struct {
	mu       sync.Mutex
	requests []*llmprovider.Request
	err      error
	block    chan struct{} // closed to release blocked calls
	started  chan struct{}

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeLLM) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		m := f.maxInFlight.Load()
		if n <= m || f.maxInFlight.CompareAndSwap(m, n) {
			break
		}
	}

	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	last := req.Messages[len(req.Messages)-1].Text()
	return &llmprovider.Response{Content: llmprovider.TextMessage(llmprovider.RoleAssistant, "echo: "+last)}, nil
}

func (f *fakeLLM) lastRequest() *llmprovider.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

type fakeTool struct {
	name   string
	result agent.Result
	err    error
	panics bool
	calls  []agent.Call
}

func (t *fakeTool) Name() string        { return t.name }
func (t *fakeTool) Description() string { return t.name }
func (t *fakeTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	t.calls = append(t.calls, call)
	if t.panics {
		panic("boom")
	}
	return t.result, t.err
}

type memStore struct {
	mu      sync.Mutex
	turns   map[string][]agent.Turn
	loadErr error
	cleared int
}

func newMemStore() *memStore {
	return &memStore{turns: map[string][]agent.Turn{}}
}

func (m *memStore) key(sessionID, userID string) string { return userID + "/" + sessionID }

func (m *memStore) Load(ctx context.Context, sessionID, userID string, limit int) ([]agent.Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return append([]agent.Turn{}, m.turns[m.key(sessionID, userID)]...), nil
}

func (m *memStore) Append(ctx context.Context, sessionID, userID string, turns ...agent.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(sessionID, userID)
	m.turns[k] = append(m.turns[k], turns...)
	return nil
}

func (m *memStore) Clear(ctx context.Context, sessionID, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.turns, m.key(sessionID, userID))
	m.cleared++
	return nil
}

func newTestOrchestrator(r router.Router, reg *agent.ToolRegistry, llm llmprovider.Generator, store HistoryStore) *Orchestrator {
	o := New(r, reg, llm, store, Config{HistoryWindow: 4}, log.NewNop())
	o.now = func() time.Time { return time.Date(2026, 4, 15, 9, 0, 0, 0, time.UTC) }
	return o
}

func process(t *testing.T, o *Orchestrator, sc model.Scope, msg string) agent.Reply {
	t.Helper()
	reply, err := o.Process(context.Background(), agent.ProcessInput{SessionID: "s1", Scope: sc, TripID: "trip-1", Message: msg})
	require.NoError(t, err)
	return reply
}

func history(t *testing.T, o *Orchestrator) []agent.Turn {
	t.Helper()
	turns, err := o.History(context.Background(), alice, "s1")
	require.NoError(t, err)
	return turns
}

func TestProcess_ModelAppendsHistory(t *testing.T) {
	llm := &fakeLLM{}
	store := newMemStore()
	o := newTestOrchestrator(generalChat, agent.NewToolRegistry(), llm, store)

	reply := process(t, o, alice, "  hello  ")
	assert.Equal(t, "echo: hello", reply.Text)
	assert.Equal(t, agent.SourceModel, reply.Source)
	assert.Equal(t, router.IntentGeneralChat, reply.Intent)

	process(t, o, alice, "and you?")

	req := llm.lastRequest()
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "hello", req.Messages[0].Text())
	assert.Equal(t, llmprovider.RoleAssistant, req.Messages[1].Role)
	assert.Contains(t, req.SystemInstruction.Text(), DefaultSystemPrompt)
	assert.Contains(t, req.SystemInstruction.Text(), "Today: 2026-04-15")

	turns := history(t, o)
	require.Len(t, turns, 4)
	assert.Equal(t, agent.RoleUser, turns[2].Role)
	assert.Equal(t, "echo: and you?", turns[3].Content)
	assert.Len(t, store.turns["alice/s1"], 4)
}

func TestProcess_HistoryWindow(t *testing.T) {
	llm := &fakeLLM{}
	o := newTestOrchestrator(generalChat, nil, llm, nil)

	for _, m := range []string{"one", "two", "three", "four"} {
		process(t, o, alice, m)
	}
	// window of 4 turns plus the new message
	req := llm.lastRequest()
	require.Len(t, req.Messages, 5)
	assert.Equal(t, "two", req.Messages[0].Text())
	assert.Len(t, history(t, o), 8)
}

func TestProcess_ToolResultSkipsHistory(t *testing.T) {
	llm := &fakeLLM{}
	hotel := &fakeTool{name: "hotel_search", result: agent.Result{
		Text: "Hotels in Rome", Handled: true, Memo: map[string]string{"city": "Rome"},
	}}
	reg := agent.NewToolRegistry()
	reg.Register(hotel)
	require.NoError(t, reg.Bind(router.IntentHotelSearch, "hotel_search"))

	r := fixedRouter{out: router.RouterOutput{Intent: router.IntentHotelSearch, Confidence: 0.8, Fields: map[string]string{}}}
	o := newTestOrchestrator(r, reg, llm, nil)

	reply := process(t, o, alice, "hotel in Rome")
	assert.Equal(t, "Hotels in Rome", reply.Text)
	assert.Equal(t, agent.SourceTool, reply.Source)
	assert.Equal(t, "hotel_search", reply.Tool)
	assert.Empty(t, history(t, o))
	assert.Empty(t, llm.requests)

	process(t, o, alice, "another hotel")
	require.Len(t, hotel.calls, 2)
	assert.Equal(t, "Rome", hotel.calls[1].Memo["city"])
	assert.Equal(t, "trip-1", hotel.calls[1].TripID)
}

func TestProcess_BoundIntentBeatsDetector(t *testing.T) {
	tests := []struct {
		name    string
		intent  router.Intent
		bound   string
		message string
	}{
		{name: "expense paid in a currency", intent: router.IntentExpense, bound: "log_expense", message: "I spent 40 usd to pay the taxi bill"},
		{name: "expense with a place word", intent: router.IntentExpense, bound: "log_expense", message: "spent 20 eur in bar tabs on dinner"},
		{name: "hotel with weather words", intent: router.IntentHotelSearch, bound: "hotel_search", message: "hotel in Rome with sunny weather"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := agent.NewToolRegistry()
			detector := &detectingTool{fakeTool: fakeTool{name: "detector", result: agent.Answer("detected")}}
			reg.Register(detector)
			bound := &fakeTool{name: tt.bound, result: agent.Answer("bound")}
			reg.Register(bound)
			require.NoError(t, reg.Bind(tt.intent, tt.bound))

			o := newTestOrchestrator(fixedRouter{out: router.RouterOutput{Intent: tt.intent}}, reg, &fakeLLM{}, nil)

			reply := process(t, o, alice, tt.message)
			assert.Equal(t, "bound", reply.Text)
			assert.Equal(t, tt.bound, reply.Tool)
			assert.Empty(t, detector.calls)
		})
	}
}

func TestProcess_DetectorAnswersOpenIntents(t *testing.T) {
	tests := []struct {
		name   string
		intent router.Intent
	}{
		{name: "general chat", intent: router.IntentGeneralChat},
		{name: "unknown", intent: router.IntentUnknown},
		{name: "intent without a tool", intent: router.IntentFlightSearch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := agent.NewToolRegistry()
			reg.Register(&detectingTool{fakeTool: fakeTool{name: "weather", result: agent.Answer("Sunny")}})
			hotel := &fakeTool{name: "hotel_search", result: agent.Answer("Hotels")}
			reg.Register(hotel)
			require.NoError(t, reg.Bind(router.IntentHotelSearch, "hotel_search"))

			o := newTestOrchestrator(fixedRouter{out: router.RouterOutput{Intent: tt.intent}}, reg, &fakeLLM{}, nil)

			reply := process(t, o, alice, "weather in Oslo")
			assert.Equal(t, "Sunny", reply.Text)
			assert.Equal(t, "weather", reply.Tool)
			assert.Empty(t, hotel.calls)
		})
	}
}

type detectingTool struct {
	fakeTool
}

func (d *detectingTool) Detect(message string) (map[string]string, bool) {
	return map[string]string{"city": "here"}, true
}

func TestProcess_DeclinedToolFallsThroughToModel(t *testing.T) {
	llm := &fakeLLM{}
	expense := &fakeTool{name: "log_expense", result: agent.Decline()}
	reg := agent.NewToolRegistry()
	reg.Register(expense)
	require.NoError(t, reg.Bind(router.IntentExpense, "log_expense"))

	o := newTestOrchestrator(fixedRouter{out: router.RouterOutput{Intent: router.IntentExpense}}, reg, llm, nil)

	reply := process(t, o, alice, "I spent a lot")
	assert.Equal(t, agent.SourceModel, reply.Source)
	assert.Len(t, expense.calls, 1)
	assert.Len(t, history(t, o), 2)
}

func TestProcess_FailuresLeaveHistoryUnchanged(t *testing.T) {
	netErr := &url.Error{Op: "Post", URL: "http://llm", Err: errors.New("connection refused")}

	tests := []struct {
		name    string
		llmErr  error
		tool    *fakeTool
		text    string
		failure agent.FailureKind
	}{
		{name: "model network", llmErr: netErr, text: ApologyNetwork, failure: agent.FailureNetwork},
		{name: "model generic", llmErr: errors.New("quota exceeded"), text: ApologyGeneric, failure: agent.FailureGeneric},
		{name: "tool error", tool: &fakeTool{name: "t", err: errors.New("broken")}, text: ApologyGeneric, failure: agent.FailureGeneric},
		{name: "tool panic", tool: &fakeTool{name: "t", panics: true}, text: ApologyGeneric, failure: agent.FailureGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeLLM{}
			reg := agent.NewToolRegistry()
			r := generalChat
			if tt.tool != nil {
				reg.Register(tt.tool)
				require.NoError(t, reg.Bind(router.IntentChecklist, tt.tool.name))
				r = fixedRouter{out: router.RouterOutput{Intent: router.IntentChecklist}}
			}
			o := newTestOrchestrator(r, reg, llm, nil)

			// seed one successful exchange
			if tt.tool == nil {
				process(t, o, alice, "hi")
				llm.err = tt.llmErr
			}
			before := len(history(t, o))

			reply := process(t, o, alice, "again")
			assert.Equal(t, tt.text, reply.Text)
			assert.Equal(t, agent.SourceError, reply.Source)
			assert.Equal(t, tt.failure, reply.Failure)
			assert.Len(t, history(t, o), before)
		})
	}
}

func TestProcess_EmptyMessage(t *testing.T) {
	o := newTestOrchestrator(generalChat, nil, &fakeLLM{}, nil)
	_, err := o.Process(context.Background(), agent.ProcessInput{SessionID: "s1", Scope: alice, Message: "   "})
	assert.ErrorIs(t, err, agent.ErrEmptyMessage)
}

func TestSession_Forbidden(t *testing.T) {
	o := newTestOrchestrator(generalChat, nil, &fakeLLM{}, nil)
	process(t, o, alice, "hi")

	_, err := o.Process(context.Background(), agent.ProcessInput{SessionID: "s1", Scope: bob, Message: "hi"})
	assert.ErrorIs(t, err, agent.ErrSessionForbidden)

	_, err = o.History(context.Background(), bob, "s1")
	assert.ErrorIs(t, err, agent.ErrSessionForbidden)
}

func TestClear_WipesHistoryAndToolState(t *testing.T) {
	store := newMemStore()
	weather := &fakeTool{name: "weather", result: agent.Result{Text: "ok", Handled: true, Memo: map[string]string{"city": "Oslo"}}}
	reg := agent.NewToolRegistry()
	reg.Register(weather)
	require.NoError(t, reg.Bind(router.IntentItinerary, "weather"))

	r := &switchRouter{intent: router.IntentGeneralChat}
	o := newTestOrchestrator(r, reg, &fakeLLM{}, store)

	process(t, o, alice, "hello")
	r.intent = router.IntentItinerary
	process(t, o, alice, "weather in Oslo")

	require.NoError(t, o.Clear(context.Background(), alice, "s1"))
	assert.Empty(t, history(t, o))
	assert.Equal(t, 1, store.cleared)

	process(t, o, alice, "weather again")
	assert.Empty(t, weather.calls[len(weather.calls)-1].Memo)
}

type switchRouter struct {
	intent router.Intent
}

func (r *switchRouter) Classify(ctx context.Context, message string) router.RouterOutput {
	return router.RouterOutput{Intent: r.intent}
}

func TestSession_RestoredFromStore(t *testing.T) {
	store := newMemStore()
	store.turns["alice/s1"] = []agent.Turn{
		{Role: agent.RoleUser, Content: "earlier question"},
		{Role: agent.RoleAssistant, Content: "earlier answer"},
	}
	llm := &fakeLLM{}
	o := newTestOrchestrator(generalChat, nil, llm, store)

	process(t, o, alice, "follow up")
	req := llm.lastRequest()
	require.Len(t, req.Messages, 3)
	assert.Equal(t, "earlier question", req.Messages[0].Text())
}

func TestSession_StoreLoadFailureIsSoft(t *testing.T) {
	store := newMemStore()
	store.loadErr = errors.New("mongo down")
	o := newTestOrchestrator(generalChat, nil, &fakeLLM{}, store)

	reply := process(t, o, alice, "hello")
	assert.Equal(t, agent.SourceModel, reply.Source)
}

func TestClose_DiscardsOutstandingResult(t *testing.T) {
	llm := &fakeLLM{block: make(chan struct{}), started: make(chan struct{}, 1)}
	o := newTestOrchestrator(generalChat, nil, llm, nil)

	done := make(chan error, 1)
	go func() {
		_, err := o.Process(context.Background(), agent.ProcessInput{SessionID: "s1", Scope: alice, Message: "slow"})
		done <- err
	}()

	<-llm.started
	o.Close("s1")

	select {
	case err := <-done:
		assert.ErrorIs(t, err, agent.ErrSessionClosed)
	case <-time.After(2 * time.Second):
		t.Fatal("Process did not return after Close")
	}
	assert.Empty(t, history(t, o))
}

func TestProcess_CallerCancelDiscardsResult(t *testing.T) {
	llm := &fakeLLM{block: make(chan struct{}), started: make(chan struct{}, 1)}
	o := newTestOrchestrator(generalChat, nil, llm, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := o.Process(ctx, agent.ProcessInput{SessionID: "s1", Scope: alice, Message: "slow"})
		done <- err
	}()

	<-llm.started
	cancel()
	assert.ErrorIs(t, <-done, agent.ErrSessionClosed)
	assert.Empty(t, history(t, o))
}

func TestProcess_SerialisesPerSession(t *testing.T) {
	llm := &fakeLLM{}
	o := newTestOrchestrator(generalChat, nil, llm, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := o.Process(context.Background(), agent.ProcessInput{SessionID: "s1", Scope: alice, Message: "hi"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), llm.maxInFlight.Load())
	assert.Len(t, history(t, o), 16)
}
