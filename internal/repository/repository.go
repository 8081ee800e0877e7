package repository

import (
	"context"

	"portfolio/backend/internal/model"
)

// ContactRepository defines the interface for contact submission storage.
// This interface makes it easy to switch database implementations.
type ContactRepository interface {
	Create(ctx context.Context, submission *model.ContactSubmission) error
	GetByID(ctx context.Context, id string) (*model.ContactSubmission, error)
	List(ctx context.Context) ([]model.ContactSubmission, error)
}
