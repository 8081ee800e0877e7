package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/backend/internal/model"
	"portfolio/backend/internal/repository"
)

func TestSQLiteContactRepository_Create(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := repository.NewSQLiteContactRepository(db)
	now := time.Now().UTC()

	mockDB.ExpectExec("INSERT INTO contact_submissions").
		WithArgs("id-1", "Jane", "jane@example.com", "Project", "Hello", now).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Create(context.Background(), &model.ContactSubmission{
		ID: "id-1", Name: "Jane", Email: "jane@example.com",
		Subject: "Project", Message: "Hello", CreatedAt: now,
	})
	require.NoError(t, err)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestSQLiteContactRepository_GetByID_NotFound(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := repository.NewSQLiteContactRepository(db)

	mockDB.ExpectQuery("SELECT id, name, email, subject, message, created_at").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "created_at"}))

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSQLiteContactRepository_List(t *testing.T) {
	db, mockDB, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	repo := repository.NewSQLiteContactRepository(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "created_at"}).
		AddRow("id-2", "Bob", "bob@example.com", "", "Second", now).
		AddRow("id-1", "Jane", "jane@example.com", "Project", "First", now.Add(-time.Hour))
	mockDB.ExpectQuery("SELECT id, name, email, subject, message, created_at").
		WillReturnRows(rows)

	submissions, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, "id-2", submissions[0].ID)
	assert.Equal(t, "id-1", submissions[1].ID)
}
