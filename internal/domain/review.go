package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a rating left for a user after a session. A reviewer may
// review a given subject at most once.
type Review struct {
	ID         uuid.UUID `json:"id" db:"id"`
	ReviewerID uuid.UUID `json:"reviewer_id" db:"reviewer_id"`
	SubjectID  uuid.UUID `json:"subject_id" db:"subject_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    *string   `json:"comment,omitempty" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
