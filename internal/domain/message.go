package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a chat message exchanged over an accepted connection.
type Message struct {
	ID           uuid.UUID `json:"id" db:"id"`
	ConnectionID uuid.UUID `json:"connection_id" db:"connection_id"`
	SenderID     uuid.UUID `json:"sender_id" db:"sender_id"`
	Body         string    `json:"body" db:"body"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
