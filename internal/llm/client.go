package llm

import (
	"context"
	"fmt"
	"log"

	"github.com/sashabaranov/go-openai"
)

const (
	// GroqBaseURL is Groq's OpenAI-compatible endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"

	// DefaultModel is the chat model used when the caller does not pick one.
	DefaultModel = "meta-llama/llama-4-scout-17b-16e-instruct"

	defaultTemperature = 0.2

	// maxToolRounds bounds the tool-calling exchange so a model that keeps
	// requesting searches cannot loop forever.
	maxToolRounds = 5
)

// Client talks to an OpenAI-compatible chat completion endpoint.
type Client struct {
	client      *openai.Client
	model       string
	temperature float32
}

// NewClient creates a chat client. baseURL may be empty for the OpenAI
// default; pass GroqBaseURL for Groq.
func NewClient(apiKey, baseURL, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: defaultTemperature,
	}
}

// Complete sends a single system + human exchange and returns the text.
func (c *Client) Complete(ctx context.Context, system, human string) (string, error) {
	messages := []openai.ChatCompletionMessage{}
	if system != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: human,
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", &ServiceError{Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &ServiceError{Err: fmt.Errorf("no choices returned")}
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteWithTools runs the tool-calling exchange. With no tools it
// degrades to a plain completion.
func (c *Client) CompleteWithTools(ctx context.Context, system, human string, tools []Tool) (string, error) {
	if len(tools) == 0 {
		return c.Complete(ctx, system, human)
	}

	byName := make(map[string]Tool, len(tools))
	defs := make([]openai.Tool, 0, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
		defs = append(defs, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  tool.Parameters,
			},
		})
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: system},
		{Role: openai.ChatMessageRoleUser, Content: human},
	}

	for round := 0; round < maxToolRounds; round++ {
		resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       c.model,
			Messages:    messages,
			Temperature: c.temperature,
			Tools:       defs,
		})
		if err != nil {
			return "", &ServiceError{Err: err}
		}
		if len(resp.Choices) == 0 {
			return "", &ServiceError{Err: fmt.Errorf("no choices returned")}
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			tool, ok := byName[call.Function.Name]
			var result string
			if !ok {
				result = fmt.Sprintf("unknown tool: %s", call.Function.Name)
			} else {
				result, err = tool.Call(ctx, []byte(call.Function.Arguments))
				if err != nil {
					// Feed the failure back so the model can finish
					// from the transcript alone.
					log.Printf("[LLM] tool %s failed: %v", call.Function.Name, err)
					result = fmt.Sprintf("tool error: %v", err)
				}
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Name:       call.Function.Name,
				Content:    result,
			})
		}
	}

	return "", &ServiceError{Err: fmt.Errorf("tool exchange did not converge after %d rounds", maxToolRounds)}
}
