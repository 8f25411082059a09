package agent_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"travel-planner/internal/agent"
	"travel-planner/internal/router"
)

type mockTool struct {
	name        string
	description string
	detect      string
}

func (m *mockTool) Name() string        { return m.name }
func (m *mockTool) Description() string { return m.description }
func (m *mockTool) Execute(ctx context.Context, call agent.Call) (agent.Result, error) {
	return agent.Answer(m.name), nil
}

type mockDetector struct {
	mockTool
}

func (m *mockDetector) Detect(message string) (map[string]string, bool) {
	if strings.Contains(message, m.detect) {
		return map[string]string{"hit": m.name}, true
	}
	return nil, false
}

func TestToolRegistry(t *testing.T) {
	registry := agent.NewToolRegistry()

	tool1 := &mockTool{name: "tool1", description: "desc1"}
	weather := &mockDetector{mockTool{name: "weather", description: "desc2", detect: "weather"}}
	currency := &mockDetector{mockTool{name: "currency", description: "desc3", detect: "convert"}}

	registry.Register(tool1)
	registry.Register(weather)
	registry.Register(currency)

	t.Run("Get existing tool", func(t *testing.T) {
		got, ok := registry.Get("tool1")
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 to be found")
		}
	})

	t.Run("Get non-existing tool", func(t *testing.T) {
		_, ok := registry.Get("missing")
		if ok {
			t.Errorf("expected 'missing' tool to not be found")
		}
	})

	t.Run("List keeps registration order", func(t *testing.T) {
		tools := registry.List()
		if len(tools) != 3 || tools[0].Name() != "tool1" || tools[2].Name() != "currency" {
			t.Errorf("unexpected order: %v", tools)
		}
	})

	t.Run("Bind and ForIntent", func(t *testing.T) {
		if err := registry.Bind(router.IntentHotelSearch, "tool1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, ok := registry.ForIntent(router.IntentHotelSearch)
		if !ok || got.Name() != "tool1" {
			t.Errorf("expected tool1 bound to hotel search")
		}
		if _, ok := registry.ForIntent(router.IntentExpense); ok {
			t.Errorf("expected no tool for expense")
		}
		if err := registry.Bind(router.IntentExpense, "missing"); !errors.Is(err, agent.ErrToolNotRegistered) {
			t.Errorf("expected ErrToolNotRegistered, got %v", err)
		}
	})

	t.Run("Detect", func(t *testing.T) {
		tool, fields, ok := registry.Detect("convert the weather")
		if !ok || tool.Name() != "weather" || fields["hit"] != "weather" {
			t.Errorf("expected first registered detector to win, got %v %v", tool, fields)
		}
		if _, _, ok := registry.Detect("hello"); ok {
			t.Errorf("expected no detection")
		}
	})

	t.Run("Describe", func(t *testing.T) {
		if !strings.Contains(registry.Describe(), "- weather: desc2\n") {
			t.Errorf("unexpected description: %q", registry.Describe())
		}
	})
}

func TestFailureFromError(t *testing.T) {
	tcs := []struct {
		name string
		err  error
		want agent.FailureKind
	}{
		{"nil", nil, agent.FailureNone},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), agent.FailureNetwork},
		{"url error", &url.Error{Op: "Get", URL: "http://x", Err: errors.New("refused")}, agent.FailureNetwork},
		{"syntax", fmt.Errorf("decode: %w", &json.SyntaxError{}), agent.FailureMalformed},
		{"other", errors.New("boom"), agent.FailureGeneric},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := agent.FailureFromError(tc.err); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFailureMessage(t *testing.T) {
	notFound := agent.FailureMessage(agent.FailureNotFound, "weather", "Atlantis")
	network := agent.FailureMessage(agent.FailureNetwork, "weather", "Atlantis")
	generic := agent.FailureMessage(agent.FailureGeneric, "weather", "Atlantis")

	if !strings.Contains(notFound, `"Atlantis"`) {
		t.Errorf("not found message should name the subject: %q", notFound)
	}
	if notFound == generic || network == generic {
		t.Errorf("messages must be distinct")
	}
}
