package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
)

// ContactService persists messages left through the site's contact form.
type ContactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit assigns the submission its identity and stores it.
func (s *ContactService) Submit(ctx context.Context, submission *model.ContactSubmission) error {
	submission.ID = uuid.NewString()
	submission.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, submission); err != nil {
		return fmt.Errorf("could not store contact submission: %w", err)
	}

	slog.Info("Stored contact submission", "id", submission.ID)
	return nil
}

// List returns all stored submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]model.ContactSubmission, error) {
	return s.repo.List(ctx)
}
