package model

import "time"

// HistoryEntry is a single prior turn of the conversation as replayed by the
// client. Only user and assistant roles are accepted at the API boundary;
// system entries are never taken from the client.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body of a POST /api/chat call. The conversation history
// is optional and bounded; the server truncates it further before contacting
// the upstream provider.
type ChatRequest struct {
	Message             string         `json:"message"`
	ConversationHistory []HistoryEntry `json:"conversationHistory,omitempty"`
}

// Usage records token accounting reported by the upstream provider.
type Usage struct {
	PromptTokens     int `json:"promptTokens"`
	CompletionTokens int `json:"completionTokens"`
	TotalTokens      int `json:"totalTokens"`
}

// ChatResponse is the normalized result of one chat request.
//
// Invariant: Success implies a non-empty Message and an empty Error; a failed
// response carries a non-empty Error and no Message.
type ChatResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Usage   *Usage `json:"usage,omitempty"`
}

// ContactSubmission is a message left through the site's contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
