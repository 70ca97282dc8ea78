package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
)

// PresenceStatus is a user's realtime availability.
type PresenceStatus string

const (
	StatusOnline  PresenceStatus = "online"
	StatusOffline PresenceStatus = "offline"
	StatusInCall  PresenceStatus = "in-call"
)

// User is a marketplace member. Skill lists are unordered and duplicates
// are kept as entered; the discovery layer dedupes only its options list.
type User struct {
	ID            uuid.UUID `json:"id" db:"id"`
	DisplayName   string    `json:"display_name" db:"display_name"`
	Email         string    `json:"email" db:"email"`
	Bio           *string   `json:"bio" db:"bio"`
	SkillsTaught  []string  `json:"skills_taught" db:"skills_taught"`
	SkillsLearned []string  `json:"skills_learned" db:"skills_learned"`
	LocationLat   *float64  `json:"location_lat,omitempty" db:"location_lat"`
	LocationLon   *float64  `json:"location_lon,omitempty" db:"location_lon"`
	ShareLocation bool      `json:"share_location" db:"share_location"`
	AvgRating     float64   `json:"avg_rating" db:"avg_rating"`
	ReviewCount   int       `json:"review_count" db:"review_count"`

	// Status is populated from the presence store, not persisted.
	Status PresenceStatus `json:"status" db:"-"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Coordinate returns the user's shared location. It is nil when the user has
// not opted in to location sharing or when the stored pair is incomplete;
// a partial coordinate is treated the same as none.
func (u *User) Coordinate() *geo.Coordinate {
	if !u.ShareLocation || u.LocationLat == nil || u.LocationLon == nil {
		return nil
	}
	return &geo.Coordinate{Lat: *u.LocationLat, Lon: *u.LocationLon}
}

// Discoverable reports whether the user exposes at least one taught or
// learned skill and therefore appears in discovery results.
func (u *User) Discoverable() bool {
	return len(u.SkillsTaught) > 0 || len(u.SkillsLearned) > 0
}

// TeachesSkill reports whether name appears in the user's taught list.
func (u *User) TeachesSkill(name string) bool {
	return containsSkill(u.SkillsTaught, name)
}

// LearnsSkill reports whether name appears in the user's learned list.
func (u *User) LearnsSkill(name string) bool {
	return containsSkill(u.SkillsLearned, name)
}

func containsSkill(skills []string, name string) bool {
	for _, s := range skills {
		if s == name {
			return true
		}
	}
	return false
}
