package agent

import (
	"fmt"
	"strings"
	"sync"

	"travel-planner/internal/router"
)

// ToolRegistry manages available tools and the intents they answer.
type ToolRegistry struct {
	mu       sync.RWMutex
	tools    map[string]Tool
	order    []string
	bindings map[router.Intent]string
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools:    make(map[string]Tool),
		bindings: make(map[router.Intent]string),
	}
}

// Register adds a tool to the registry. Re-registering a name replaces the tool in place.
func (r *ToolRegistry) Register(tool Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[tool.Name()]; !exists {
		r.order = append(r.order, tool.Name())
	}
	r.tools[tool.Name()] = tool
}

// Bind routes an intent to a registered tool.
func (r *ToolRegistry) Bind(intent router.Intent, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[name]; !ok {
		return fmt.Errorf("%w: %s", ErrToolNotRegistered, name)
	}
	r.bindings[intent] = name
	return nil
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tool, ok := r.tools[name]
	return tool, ok
}

// ForIntent returns the tool bound to intent.
func (r *ToolRegistry) ForIntent(intent router.Intent) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name, ok := r.bindings[intent]
	if !ok {
		return nil, false
	}
	tool, ok := r.tools[name]
	return tool, ok
}

// Detect asks detector tools, in registration order, whether they recognise message.
func (r *ToolRegistry) Detect(message string) (Tool, map[string]string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		d, ok := r.tools[name].(Detector)
		if !ok {
			continue
		}
		if fields, ok := d.Detect(message); ok {
			return r.tools[name], fields, true
		}
	}
	return nil, nil, false
}

// List returns all registered tools in registration order.
func (r *ToolRegistry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Describe renders one "- name: description" line per tool.
func (r *ToolRegistry) Describe() string {
	var sb strings.Builder
	for _, t := range r.List() {
		fmt.Fprintf(&sb, "- %s: %s\n", t.Name(), t.Description())
	}
	return sb.String()
}
