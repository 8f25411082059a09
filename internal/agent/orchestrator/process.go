package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"strings"

	"travel-planner/internal/agent"
	"travel-planner/internal/router"
	"travel-planner/pkg/llmprovider"
)

// Process answers one utterance. Utterances of a session run one at a time in
// arrival order. Tool answers are returned without touching the history; a chat
// model answer appends the user and assistant turns. Failures come back as an
// apologetic Reply with the history unchanged. If the session is closed or ctx is
// cancelled while a call is outstanding, the result is dropped and
// agent.ErrSessionClosed is returned.
func (o *Orchestrator) Process(ctx context.Context, in agent.ProcessInput) (agent.Reply, error) {
	message := strings.TrimSpace(in.Message)
	if message == "" {
		return agent.Reply{}, agent.ErrEmptyMessage
	}

	s, err := o.session(in.Scope, in.SessionID)
	if err != nil {
		return agent.Reply{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed() || ctx.Err() != nil {
		return agent.Reply{}, agent.ErrSessionClosed
	}
	o.restore(ctx, s)

	callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	route := o.router.Classify(ctx, message)
	reply := agent.Reply{
		Intent:     route.Intent,
		Confidence: route.Confidence,
		Fields:     route.Fields,
	}

	if tool, fields := o.pickTool(message, route); tool != nil {
		result, err := o.runTool(callCtx, tool, agent.Call{
			Message: message,
			Fields:  fields,
			Scope:   in.Scope,
			TripID:  in.TripID,
			Memo:    maps.Clone(s.memo),
		})
		if o.abandoned(ctx, s) {
			return agent.Reply{}, agent.ErrSessionClosed
		}
		if err != nil {
			o.l.Errorf(ctx, "%s: tool %s: %v", LogPrefixProcess, tool.Name(), err)
			return o.apology(reply, err), nil
		}
		if result.Handled {
			maps.Copy(s.memo, result.Memo)
			reply.Text = result.Text
			reply.Source = agent.SourceTool
			reply.Tool = tool.Name()
			reply.Failure = result.Failure
			reply.Fields = fields
			return reply, nil
		}
		o.l.Debugf(ctx, "%s: tool %s declined, asking the model", LogPrefixProcess, tool.Name())
	}

	text, err := o.generate(callCtx, s, message)
	if o.abandoned(ctx, s) {
		return agent.Reply{}, agent.ErrSessionClosed
	}
	if err != nil {
		o.l.Errorf(ctx, "%s: model: %v", LogPrefixProcess, err)
		return o.apology(reply, err), nil
	}

	now := o.now()
	turns := []agent.Turn{
		{Role: agent.RoleUser, Content: message, CreatedAt: now},
		{Role: agent.RoleAssistant, Content: text, CreatedAt: now},
	}
	s.appendTurns(turns...)
	o.persist(ctx, s, turns...)

	reply.Text = text
	reply.Source = agent.SourceModel
	return reply, nil
}

// pickTool prefers the tool bound to a specific intent. Detector tools only
// answer when the router settled on general chat or unknown, or when no tool
// is bound to the intent.
func (o *Orchestrator) pickTool(message string, route router.RouterOutput) (agent.Tool, map[string]string) {
	if o.registry == nil {
		return nil, nil
	}
	if !isOpenIntent(route.Intent) {
		if tool, ok := o.registry.ForIntent(route.Intent); ok {
			return tool, route.Fields
		}
	}
	if tool, fields, ok := o.registry.Detect(message); ok {
		return tool, fields
	}
	if tool, ok := o.registry.ForIntent(route.Intent); ok {
		return tool, route.Fields
	}
	return nil, nil
}

func isOpenIntent(intent router.Intent) bool {
	return intent == router.IntentGeneralChat || intent == router.IntentUnknown
}

// runTool turns a panicking tool into an error.
func (o *Orchestrator) runTool(ctx context.Context, tool agent.Tool, call agent.Call) (res agent.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tool %s panicked: %v", tool.Name(), r)
		}
	}()
	return tool.Execute(ctx, call)
}

func (o *Orchestrator) generate(ctx context.Context, s *session, message string) (string, error) {
	if o.llm == nil {
		return "", llmprovider.ErrNoProvidersConfigured
	}

	system := llmprovider.TextMessage(llmprovider.RoleUser, o.cfg.SystemPrompt+buildTimeContext(o.now().In(o.loc)))
	history := s.window(o.cfg.HistoryWindow)
	messages := make([]llmprovider.Message, 0, len(history)+1)
	for _, t := range history {
		role := llmprovider.RoleUser
		if t.Role == agent.RoleAssistant {
			role = llmprovider.RoleAssistant
		}
		messages = append(messages, llmprovider.TextMessage(role, t.Content))
	}
	messages = append(messages, llmprovider.TextMessage(llmprovider.RoleUser, message))

	resp, err := o.llm.GenerateContent(ctx, &llmprovider.Request{
		SystemInstruction: &system,
		Messages:          messages,
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", llmprovider.ErrEmptyReply
	}
	return text, nil
}

// abandoned reports whether the caller or the session went away during a call.
func (o *Orchestrator) abandoned(ctx context.Context, s *session) bool {
	return s.closed() || ctx.Err() != nil
}

func (o *Orchestrator) apology(reply agent.Reply, err error) agent.Reply {
	reply.Source = agent.SourceError
	reply.Failure = agent.FailureFromError(err)
	if errors.Is(err, llmprovider.ErrNoProvidersConfigured) {
		reply.Failure = agent.FailureGeneric
	}
	reply.Text = ApologyGeneric
	if reply.Failure == agent.FailureNetwork {
		reply.Text = ApologyNetwork
	}
	return reply
}
