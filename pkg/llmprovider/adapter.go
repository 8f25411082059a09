package llmprovider

import (
	"context"

	"travel-planner/pkg/deepseek"
	"travel-planner/pkg/gemini"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.Generator
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.Generator) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Messages:    make([]gemini.Content, len(req.Messages)),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		geminiReq.SystemInstruction = &gemini.Content{Parts: toGeminiParts(req.SystemInstruction.Parts)}
	}
	for i, msg := range req.Messages {
		geminiReq.Messages[i] = gemini.Content{
			Role:  toGeminiRole(msg.Role),
			Parts: toGeminiParts(msg.Parts),
		}
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: RoleAssistant, Parts: parts},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Gemini calls the assistant role "model".
func toGeminiRole(role string) string {
	if role == RoleAssistant {
		return gemini.RoleModel
	}
	return role
}

func toGeminiParts(parts []Part) []gemini.Part {
	out := make([]gemini.Part, len(parts))
	for i, p := range parts {
		out[i] = gemini.Part{Text: p.Text}
	}
	return out
}

// ChatCompletionsAdapter adapts pkg/deepseek, and any other OpenAI-compatible
// endpoint served through it, to llmprovider.Provider interface
type ChatCompletionsAdapter struct {
	name   string
	client deepseek.Generator
}

// NewChatCompletionsAdapter creates an adapter reporting the given provider name
func NewChatCompletionsAdapter(name string, client deepseek.Generator) *ChatCompletionsAdapter {
	return &ChatCompletionsAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *ChatCompletionsAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	dsReq := &deepseek.Request{
		Messages:    make([]deepseek.Message, 0, len(req.Messages)+1),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.SystemInstruction != nil {
		if text := req.SystemInstruction.Text(); text != "" {
			dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: deepseek.RoleSystem, Content: text})
		}
	}
	for _, msg := range req.Messages {
		dsReq.Messages = append(dsReq.Messages, deepseek.Message{Role: msg.Role, Content: msg.Text()})
	}

	resp, err := a.client.GenerateContent(ctx, dsReq)
	if err != nil {
		return nil, err
	}

	choice := resp.Choices[0]
	model := resp.Model
	if model == "" {
		model = a.client.Model()
	}

	return &Response{
		Content:      TextMessage(RoleAssistant, choice.Message.Content),
		ProviderName: a.name,
		ModelName:    model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns the provider name
func (a *ChatCompletionsAdapter) Name() string {
	return a.name
}

// Model returns the model name
func (a *ChatCompletionsAdapter) Model() string {
	return a.client.Model()
}
