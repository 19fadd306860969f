package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Message roles accepted by the completion endpoint.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one role-tagged block of a completion request.
type Message struct {
	Role    string
	Content string
}

// GenerateRequest holds the parameters for a completion call. Generation
// parameters (temperature, top-p, max tokens) come from the task's config.
type GenerateRequest struct {
	Task     TaskType
	Messages []Message
}

// GenerateResponse holds the result of a completion call.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// CompletionClient provides access to a chat-completion endpoint.
type CompletionClient interface {
	// Generate sends the ordered message list and returns the raw text
	// completion. An empty completion is ErrEmptyResponse, never "".
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// openAIClient implements CompletionClient against any chat-completions
// compatible endpoint.
type openAIClient struct {
	cfg      Config
	api      *openai.Client
	observer Observer
}

// NewOpenAIClient creates a CompletionClient for the configured endpoint.
// The API key is validated lazily: construction always succeeds, the first
// Generate without a key fails with ErrMissingAPIKey.
func NewOpenAIClient(cfg Config, observer Observer) CompletionClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = cfg.BaseURL
	}
	return &openAIClient{
		cfg:      cfg,
		api:      openai.NewClientWithConfig(apiCfg),
		observer: observer,
	}
}

func (c *openAIClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	if strings.TrimSpace(c.cfg.APIKey) == "" {
		c.emit(req.Task, "", start, false, "MISSING_KEY")
		return nil, ErrMissingAPIKey
	}

	taskCfg := c.cfg.Tasks[req.Task]

	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: taskCfg.Temperature,
		TopP:        taskCfg.TopP,
		MaxTokens:   taskCfg.MaxTokens,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			c.emit(req.Task, "", start, false, "TIMEOUT")
			return nil, ErrTimeout
		}
		c.emit(req.Task, "", start, false, "TRANSPORT")
		return nil, fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		c.emit(req.Task, resp.Model, start, false, "EMPTY")
		return nil, ErrEmptyResponse
	}

	latency := time.Since(start).Milliseconds()
	c.observer.OnCallComplete(CallEvent{
		Task:      req.Task,
		Model:     resp.Model,
		LatencyMs: latency,
		Success:   true,
	})

	return &GenerateResponse{
		Text:      resp.Choices[0].Message.Content,
		Model:     resp.Model,
		LatencyMs: latency,
	}, nil
}

func (c *openAIClient) emit(task TaskType, model string, start time.Time, success bool, code string) {
	if model == "" {
		model = c.cfg.Model
	}
	c.observer.OnCallComplete(CallEvent{
		Task:      task,
		Model:     model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   success,
		ErrorCode: code,
	})
}
