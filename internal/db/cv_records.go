package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/cv-tracker/internal/types"
)

// CVRecord is a stored résumé: its origin format and serialized content.
// Uncertainty markers are never persisted.
type CVRecord struct {
	ID        uuid.UUID    `json:"id"`
	Origin    types.Origin `json:"origin"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// ValidOrigin reports whether origin is one the store accepts
func ValidOrigin(origin types.Origin) bool {
	return origin == types.OriginJSON || origin == types.OriginText
}

// SaveCVRecord inserts or replaces a record. A nil ID is assigned a new one.
// CreatedAt and UpdatedAt are set from the database.
func (db *DB) SaveCVRecord(ctx context.Context, rec *CVRecord) error {
	if !ValidOrigin(rec.Origin) {
		return fmt.Errorf("invalid record origin %q", rec.Origin)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO cv_records (id, origin, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET origin = $2, content = $3, updated_at = NOW()
		 RETURNING created_at, updated_at`,
		rec.ID, string(rec.Origin), rec.Content,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save cv record %s: %w", rec.ID, err)
	}
	return nil
}

// GetCVRecord loads a record by id
func (db *DB) GetCVRecord(ctx context.Context, id uuid.UUID) (*CVRecord, error) {
	var rec CVRecord
	var origin string
	err := db.pool.QueryRow(ctx,
		`SELECT id, origin, content, created_at, updated_at FROM cv_records WHERE id = $1`,
		id,
	).Scan(&rec.ID, &origin, &rec.Content, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cv record %s: %w", id, err)
	}
	rec.Origin = types.Origin(origin)
	return &rec, nil
}

// DeleteCVRecord removes a record. Deleting an unknown id is not an error.
func (db *DB) DeleteCVRecord(ctx context.Context, id uuid.UUID) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM cv_records WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete cv record %s: %w", id, err)
	}
	return nil
}
