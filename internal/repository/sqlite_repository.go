package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio/backend/internal/model"
)

type sqliteContactRepository struct {
	db *sql.DB
}

// NewSQLiteContactRepository returns a ContactRepository backed by SQLite.
func NewSQLiteContactRepository(db *sql.DB) ContactRepository {
	return &sqliteContactRepository{db: db}
}

func (r *sqliteContactRepository) Create(ctx context.Context, s *model.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, name, email, subject, message, created_at)
	          VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.Name, s.Email, s.Subject, s.Message, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert contact submission: %w", err)
	}
	return nil
}

func (r *sqliteContactRepository) GetByID(ctx context.Context, id string) (*model.ContactSubmission, error) {
	query := `SELECT id, name, email, subject, message, created_at
	          FROM contact_submissions WHERE id = ?`
	var s model.ContactSubmission
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("could not get contact submission: %w", err)
	}
	return &s, nil
}

func (r *sqliteContactRepository) List(ctx context.Context) ([]model.ContactSubmission, error) {
	query := `SELECT id, name, email, subject, message, created_at
	          FROM contact_submissions ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list contact submissions: %w", err)
	}
	defer rows.Close()

	var submissions []model.ContactSubmission
	for rows.Next() {
		var s model.ContactSubmission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Subject, &s.Message, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan contact submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
