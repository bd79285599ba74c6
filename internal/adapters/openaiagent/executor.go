// Package openaiagent executes agent workflows against an OpenAI-compatible
// chat completion API.
package openaiagent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/APVS-BRO/ai-careers-hub/internal/domain/agent"
	"github.com/APVS-BRO/ai-careers-hub/internal/domain/model"
)

// Config holds hosted LLM connection settings.
type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint for OpenAI-compatible gateways.
	BaseURL string
}

// Executor implements core.AgentExecutor with one chat completion per run:
// the event's system prompt plus the user input.
type Executor struct {
	client *openai.Client
	model  string
}

// NewExecutor creates an executor from config.
func NewExecutor(cfg Config) (*Executor, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM API key is required")
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	llmModel := cfg.Model
	if llmModel == "" {
		llmModel = openai.GPT4oMini
	}

	return &Executor{
		client: openai.NewClientWithConfig(clientConfig),
		model:  llmModel,
	}, nil
}

// Execute runs one agent workflow and returns the raw completion text.
func (e *Executor) Execute(ctx context.Context, event model.EventName, input string) (string, error) {
	prompt := agent.PromptFor(event)
	if prompt == "" {
		return "", fmt.Errorf("no prompt registered for event %q", event)
	}
	if strings.TrimSpace(input) == "" {
		return "", errors.New("agent input is empty")
	}

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: e.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion for %s: %w", event, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion for %s returned no choices", event)
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
