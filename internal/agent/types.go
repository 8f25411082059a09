package agent

import (
	"context"
	"time"

	"travel-planner/internal/model"
	"travel-planner/internal/router"
)

// Tool is a deterministic handler the orchestrator can answer with instead of the chat model.
type Tool interface {
	// Name returns the registry key.
	Name() string

	// Description is a one-line summary shown to the chat model and to API clients.
	Description() string

	// Execute runs the tool. Expected failures are reported in the Result;
	// a returned error means the tool itself is broken.
	Execute(ctx context.Context, call Call) (Result, error)
}

// Detector is implemented by tools that recognise their own requests
// (weather, currency) rather than being bound to a router intent.
type Detector interface {
	Detect(message string) (map[string]string, bool)
}

// Call is the input handed to a tool.
type Call struct {
	Message string
	Fields  map[string]string
	Scope   model.Scope
	TripID  string
	// Memo is the session's tool state. Tools must not modify it; return changes in Result.Memo.
	Memo map[string]string
}

// Result is a tool outcome.
type Result struct {
	Text string
	// Handled is false when the tool declines and the chat model should answer instead.
	Handled bool
	Failure FailureKind
	Memo    map[string]string
	Data    any
}

// Decline lets the orchestrator fall through to the chat model.
func Decline() Result {
	return Result{}
}

// Answer is a handled, successful result.
func Answer(text string) Result {
	return Result{Text: text, Handled: true}
}

// Failed is a handled result carrying a plain-language failure message.
func Failed(kind FailureKind, text string) Result {
	return Result{Text: text, Handled: true, Failure: kind}
}

// Conversation roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Turn is one message in a session's history.
type Turn struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Reply sources.
const (
	SourceTool  = "tool"
	SourceModel = "model"
	SourceError = "error"
)

// ProcessInput is one user utterance.
type ProcessInput struct {
	SessionID string
	Scope     model.Scope
	TripID    string
	Message   string
}

// Reply is the answer to one utterance.
type Reply struct {
	Text       string            `json:"text"`
	Source     string            `json:"source"`
	Tool       string            `json:"tool,omitempty"`
	Intent     router.Intent     `json:"intent"`
	Confidence float64           `json:"confidence"`
	Fields     map[string]string `json:"fields,omitempty"`
	Failure    FailureKind       `json:"failure,omitempty"`
}

// Assistant is the chat entry point used by the delivery layers.
type Assistant interface {
	Process(ctx context.Context, in ProcessInput) (Reply, error)
	Clear(ctx context.Context, sc model.Scope, sessionID string) error
	Close(sessionID string)
	History(ctx context.Context, sc model.Scope, sessionID string) ([]Turn, error)
}
