package domain

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionStatus is the lifecycle state of a connection request.
type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionDeclined ConnectionStatus = "declined"
)

// Connection is a directed friend request between two users. Icebreakers
// are optional AI-generated opening lines filled in on acceptance.
type Connection struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	RequesterID uuid.UUID        `json:"requester_id" db:"requester_id"`
	RecipientID uuid.UUID        `json:"recipient_id" db:"recipient_id"`
	Status      ConnectionStatus `json:"status" db:"status"`
	Icebreakers []string         `json:"icebreakers,omitempty" db:"icebreakers"`
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`
}

// HasUser reports whether userID is either side of the connection.
func (c *Connection) HasUser(userID uuid.UUID) bool {
	return c.RequesterID == userID || c.RecipientID == userID
}

// OtherUser returns the counterpart of userID on this connection.
func (c *Connection) OtherUser(userID uuid.UUID) (uuid.UUID, bool) {
	if c.RequesterID == userID {
		return c.RecipientID, true
	}
	if c.RecipientID == userID {
		return c.RequesterID, true
	}
	return uuid.Nil, false
}
