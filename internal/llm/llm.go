package llm

import "context"

// Message is one turn sent to the upstream provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the provider-agnostic shape of one completion call.
type CompletionRequest struct {
	SystemPrompt string
	Messages     []Message
}

// Usage records token accounting reported by the provider.
type Usage struct {
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// Completion is a successful provider response.
type Completion struct {
	Text  string
	Usage Usage
}

// Credential is one entry of the upstream credential pool. Label is a short
// non-secret identifier used in logs; the key itself must never appear in a
// log line or a client response.
type Credential struct {
	Label string
	Key   string
}

// Provider executes a single completion attempt with one credential. The
// rotation logic lives above this interface so providers stay dumb transports.
type Provider interface {
	Complete(ctx context.Context, cred Credential, req *CompletionRequest) (*Completion, error)
}

// Client is what the orchestration layer depends on: a completion call with
// credential rotation already folded in.
type Client interface {
	Complete(ctx context.Context, req *CompletionRequest) (*Completion, error)
}
