package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/service"
)

// fakeContactRepo records created submissions in memory.
type fakeContactRepo struct {
	created []*model.ContactSubmission
	err     error
}

func (f *fakeContactRepo) Create(_ context.Context, s *model.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, s)
	return nil
}

func (f *fakeContactRepo) GetByID(context.Context, string) (*model.ContactSubmission, error) {
	return nil, nil
}

func (f *fakeContactRepo) List(context.Context) ([]model.ContactSubmission, error) {
	out := make([]model.ContactSubmission, len(f.created))
	for i, s := range f.created {
		out[i] = *s
	}
	return out, nil
}

func TestContactService_Submit(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := service.NewContactService(repo)

	submission := &model.ContactSubmission{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Message: "Hello, are you available?",
	}
	err := svc.Submit(context.Background(), submission)
	require.NoError(t, err)

	// The service assigns identity before persisting.
	assert.NotEmpty(t, submission.ID)
	assert.False(t, submission.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
}

func TestContactService_SubmitRepositoryError(t *testing.T) {
	repo := &fakeContactRepo{err: errors.New("disk full")}
	svc := service.NewContactService(repo)

	err := svc.Submit(context.Background(), &model.ContactSubmission{Name: "Jane"})
	assert.Error(t, err)
}
