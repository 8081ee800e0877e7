package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	app_errors "portfolio/backend/internal/errors"
	"portfolio/backend/internal/knowledge"
	"portfolio/backend/internal/llm"
	"portfolio/backend/internal/model"
	"portfolio/backend/internal/ratelimit"
)

// unavailableMessage is the only wording a caller ever sees when the upstream
// provider fails. Credential labels, status codes and raw provider bodies stay
// in the server logs.
const unavailableMessage = "The assistant is temporarily unavailable. Please try again in a moment."

// ChatService orchestrates one chat request: rate limit, history trimming,
// system prompt assembly and the (rotating) upstream call. All of its state is
// injected so tests and production can wire different stores and clients
// without touching the pipeline logic.
type ChatService struct {
	limiter   ratelimit.Store
	llm       llm.Client
	knowledge *knowledge.Compiler
	maxTurns  int
}

func NewChatService(limiter ratelimit.Store, llmClient llm.Client, kb *knowledge.Compiler, maxTurns int) *ChatService {
	return &ChatService{limiter: limiter, llm: llmClient, knowledge: kb, maxTurns: maxTurns}
}

// ProcessMessage runs the pipeline for a single already-validated request.
//
// Provider failures come back as a ChatResponse with Success=false and a
// generic error message: this method is the single point deciding user-visible
// wording. Rate limiting and unexpected failures are returned as errors for
// the HTTP layer to map to status codes.
func (s *ChatService) ProcessMessage(ctx context.Context, req *model.ChatRequest, clientID string) (*model.ChatResponse, error) {
	allowed, err := s.limiter.Allow(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}
	if !allowed {
		slog.Info("Request rate limited", "client_id", clientID)
		return nil, app_errors.ErrRateLimited
	}

	history := truncateHistory(req.ConversationHistory, s.maxTurns*2)

	messages := make([]llm.Message, 0, len(history)+1)
	for _, entry := range history {
		messages = append(messages, llm.Message{Role: entry.Role, Content: entry.Content})
	}
	messages = append(messages, llm.Message{Role: "user", Content: req.Message})

	completion, err := s.llm.Complete(ctx, &llm.CompletionRequest{
		SystemPrompt: s.knowledge.SystemPrompt(),
		Messages:     messages,
	})
	if err != nil {
		slog.Error("Chat completion failed", "client_id", clientID, "error", err)
		if errors.Is(err, app_errors.ErrProviderExhausted) || errors.Is(err, app_errors.ErrProviderRejected) {
			// Degraded service, not a server bug: respond normally with a
			// failure payload rather than a 5xx.
			return &model.ChatResponse{Success: false, Error: unavailableMessage}, nil
		}
		return nil, err
	}

	return &model.ChatResponse{
		Success: true,
		Message: completion.Text,
		Usage: &model.Usage{
			PromptTokens:     completion.Usage.PromptTokens,
			CompletionTokens: completion.Usage.CompletionTokens,
			TotalTokens:      completion.Usage.TotalTokens,
		},
	}, nil
}

// truncateHistory keeps the most recent max entries, dropping the oldest
// first and preserving order. Validation has already rejected malformed
// history; overflow here is trimmed, not rejected.
func truncateHistory(history []model.HistoryEntry, max int) []model.HistoryEntry {
	if len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}
