package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/cvera/cvbuilder/internal/types"
)

// ErrNotFound is returned by mutations that target a missing CV id.
var ErrNotFound = errors.New("cv not found")

// CreateCV inserts a new CV record and returns its id.
func (db *DB) CreateCV(ctx context.Context, userID uuid.UUID, title, templateID string, cvData json.RawMessage) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO cvs (user_id, title, template_id, cv_data)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, title, templateID, cvData,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create cv: %w", err)
	}
	return id, nil
}

// GetCV fetches one CV record by id. Returns (nil, nil) when no record
// exists.
func (db *DB) GetCV(ctx context.Context, id uuid.UUID) (*CV, error) {
	var cv CV
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, template_id, cv_data, created_at, updated_at
		 FROM cvs WHERE id = $1`,
		id,
	).Scan(&cv.ID, &cv.UserID, &cv.Title, &cv.TemplateID, &cv.CVData, &cv.CreatedAt, &cv.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cv: %w", err)
	}
	return &cv, nil
}

// ListCVs returns the CVs belonging to one user, newest first, without the
// cv_data payloads.
func (db *DB) ListCVs(ctx context.Context, userID uuid.UUID) ([]CVSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, template_id, updated_at
		 FROM cvs WHERE user_id = $1
		 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list cvs: %w", err)
	}
	defer rows.Close()

	var out []CVSummary
	for rows.Next() {
		var cv CVSummary
		if err := rows.Scan(&cv.ID, &cv.Title, &cv.TemplateID, &cv.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan cv row: %w", err)
		}
		out = append(out, cv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cv rows: %w", err)
	}
	return out, nil
}

// UpdateCV replaces the title, template and cv_data of one record.
func (db *DB) UpdateCV(ctx context.Context, id uuid.UUID, title, templateID string, cvData json.RawMessage) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE cvs SET title = $1, template_id = $2, cv_data = $3, updated_at = NOW()
		 WHERE id = $4`,
		title, templateID, cvData, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update cv: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// UpdateSectionOrder rewrites only the sectionOrder key inside cv_data. Used
// by the reorder autosave path, which carries the full section list on every
// call.
func (db *DB) UpdateSectionOrder(ctx context.Context, id uuid.UUID, refs []types.SectionRef) error {
	encoded, err := json.Marshal(refs)
	if err != nil {
		return fmt.Errorf("failed to marshal section order: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE cvs
		 SET cv_data = jsonb_set(cv_data, '{sectionOrder}', $1::jsonb, true),
		     updated_at = NOW()
		 WHERE id = $2`,
		encoded, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update section order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// DeleteCV removes one CV record.
func (db *DB) DeleteCV(ctx context.Context, id uuid.UUID) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM cvs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cv: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
