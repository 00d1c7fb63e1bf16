package llm

import "context"

// Provider is the abstraction over the external text-generation service.
// The tutor builds a Request from the chat transcript and receives plain
// generated text back; every transport concern (wire shape, auth, model
// naming) stays behind this interface.
type Provider interface {
	// Generate sends the conversation to the model and returns its reply.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes one chat completion call.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the bounded conversation window, oldest first.
	Messages []Message

	// MaxTokens caps the response length. 0 means the provider default.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Response holds the model's output.
type Response struct {
	// Text is the generated reply. May be empty when the provider
	// answered but no text could be extracted from the response shape;
	// callers substitute their own placeholder in that case.
	Text string

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
