package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/cv-tracker/internal/types"
)

// SaveProfile upserts a profile as a JSON document. An empty or non-uuid
// profile ID is replaced with a new one.
func (db *DB) SaveProfile(ctx context.Context, p *types.Profile) error {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		id = uuid.New()
		p.ID = id.String()
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO profiles (id, data)
		 VALUES ($1, $2)
		 ON CONFLICT (id) DO UPDATE SET data = $2, updated_at = NOW()`,
		id, data,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile %s: %w", id, err)
	}
	return nil
}

// GetProfile loads a profile by id
func (db *DB) GetProfile(ctx context.Context, id uuid.UUID) (*types.Profile, error) {
	var data []byte
	err := db.pool.QueryRow(ctx, `SELECT data FROM profiles WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile %s: %w", id, err)
	}

	var p types.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile %s: %w", id, err)
	}
	p.ID = id.String()
	return &p, nil
}

// SaveJobDescription stores an extracted job description and returns its id
func (db *DB) SaveJobDescription(ctx context.Context, source string, jd *types.JobDescription) (uuid.UUID, error) {
	data, err := json.Marshal(jd)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal job description: %w", err)
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO job_descriptions (id, source, data) VALUES ($1, $2, $3)`,
		id, source, data,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save job description: %w", err)
	}
	return id, nil
}

// GetJobDescription loads a job description by id
func (db *DB) GetJobDescription(ctx context.Context, id uuid.UUID) (*types.JobDescription, error) {
	var data []byte
	err := db.pool.QueryRow(ctx, `SELECT data FROM job_descriptions WHERE id = $1`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job description %s: %w", id, err)
	}

	var jd types.JobDescription
	if err := json.Unmarshal(data, &jd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal job description %s: %w", id, err)
	}
	return &jd, nil
}
