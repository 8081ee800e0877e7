package interfaces

import (
	"context"

	"portfolio/backend/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for the chat request pipeline.
type ChatService interface {
	ProcessMessage(ctx context.Context, req *model.ChatRequest, clientID string) (*model.ChatResponse, error)
}

// ContactService defines the contract for contact form handling.
type ContactService interface {
	Submit(ctx context.Context, submission *model.ContactSubmission) error
	List(ctx context.Context) ([]model.ContactSubmission, error)
}
