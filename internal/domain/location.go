package domain

import (
	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
)

// LocationUpdate is a live location-feed event. A nil Coordinate means the
// user revoked location sharing.
type LocationUpdate struct {
	UserID     uuid.UUID       `json:"user_id"`
	Coordinate *geo.Coordinate `json:"coordinate"`
}
