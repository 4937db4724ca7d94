package llm

import (
	"context"
	"encoding/json"
	"fmt"
)

// Model is the generative-model contract the content generators depend on.
// A single call either returns response text or fails; retries are the
// caller's decision, not the model's.
type Model interface {
	// Complete sends one system + human turn and returns the response text.
	Complete(ctx context.Context, system, human string) (string, error)

	// CompleteWithTools runs a tool-calling exchange: the model may request
	// tool invocations, whose results are fed back until it produces a
	// final text answer.
	CompleteWithTools(ctx context.Context, system, human string, tools []Tool) (string, error)
}

// Tool is a callable binding the model may invoke during generation.
type Tool struct {
	Name        string
	Description string
	Parameters  json.RawMessage // JSON schema for the arguments object
	Call        func(ctx context.Context, args json.RawMessage) (string, error)
}

// ServiceError wraps a failed generative-model call (network, auth, quota).
type ServiceError struct {
	Err error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("generative model: %v", e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }
