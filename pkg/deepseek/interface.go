package deepseek

import "context"

// Generator is an OpenAI-compatible chat completions client (DeepSeek, Qwen on DashScope).
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ Generator = (*Client)(nil)
