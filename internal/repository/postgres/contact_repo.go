package postgres

import (
	"context"
	"fmt"

	"go-pestcontrol-web/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ContactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create stores an accepted submission. Attachment bytes are not
// persisted, only their metadata; the photo travels in the forwarded
// email flow.
func (r *ContactRepository) Create(ctx context.Context, sub *domain.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions
			(id, name, phone, area, pest_type, message, attachment_name, attachment_mime, attachment_size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	var attName, attMIME string
	var attSize int64
	if sub.File != nil {
		attName = sub.File.Filename
		attMIME = sub.File.MIME
		attSize = sub.File.Size
	}

	_, err := r.db.Exec(ctx, query,
		sub.ID, sub.Name, sub.Phone, sub.Area, sub.PestType, sub.Message,
		attName, attMIME, attSize, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

// List returns submissions newest first.
func (r *ContactRepository) List(ctx context.Context, limit, offset int) ([]domain.ContactSubmission, error) {
	query := `
		SELECT id, name, phone, area, pest_type, message, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	defer rows.Close()

	var subs []domain.ContactSubmission
	for rows.Next() {
		var sub domain.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Phone, &sub.Area, &sub.PestType, &sub.Message, &sub.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}
