package db

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// CV is one stored CV record. CVData holds the canonical cv_data JSON as it
// was saved; decoding to the typed form happens in the editor layer.
type CV struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Title      string          `json:"title"`
	TemplateID string          `json:"templateId"`
	CVData     json.RawMessage `json:"cv_data"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// CVSummary is the list view of a stored CV, without the cv_data payload.
type CVSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"templateId"`
	UpdatedAt  time.Time `json:"updated_at"`
}
