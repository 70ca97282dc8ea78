package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
)

//go:generate mockgen -source=repository.go -destination=mocks/mock.go

// UserRepository is the durable store of user profiles.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// ListDiscoverable returns every user except excludeID that exposes at
	// least one taught or learned skill, in stable fetch order.
	ListDiscoverable(ctx context.Context, excludeID uuid.UUID) ([]*domain.User, error)
}

type ConnectionRepository interface {
	Create(ctx context.Context, conn *domain.Connection) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error)
	// GetByUsers looks the connection up in either direction.
	GetByUsers(ctx context.Context, userA, userB uuid.UUID) (*domain.Connection, error)
	// ListForUser returns the user's connections newest first. An empty
	// status matches every state.
	ListForUser(ctx context.Context, userID uuid.UUID, status domain.ConnectionStatus) ([]*domain.Connection, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ConnectionStatus) error
	UpdateIcebreakers(ctx context.Context, id uuid.UUID, icebreakers []string) error
}

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	ListByConnection(ctx context.Context, connectionID uuid.UUID, limit, offset int) ([]*domain.Message, error)
}

type ReviewRepository interface {
	// Create stores the review and refreshes the subject's rating
	// aggregates in the same transaction.
	Create(ctx context.Context, review *domain.Review) error
	GetByUsers(ctx context.Context, reviewerID, subjectID uuid.UUID) (*domain.Review, error)
	ListForUser(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*domain.Review, error)
}

// PresenceStore tracks realtime user status. A missing entry means offline.
type PresenceStore interface {
	Set(ctx context.Context, userID uuid.UUID, status domain.PresenceStatus) error
	Get(ctx context.Context, userID uuid.UUID) (domain.PresenceStatus, error)
	GetMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]domain.PresenceStatus, error)
}

// LocationFeed is the live stream of location-sharing changes. Subscribe
// delivers updates until ctx is canceled; the returned channel is closed on
// teardown.
type LocationFeed interface {
	Publish(ctx context.Context, update domain.LocationUpdate) error
	Subscribe(ctx context.Context) (<-chan domain.LocationUpdate, error)
}
