// Package location tracks the most recent shared coordinate per user, fed
// by a live subscription instead of per-request database reads.
package location

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
)

// Feed is the live stream the holder consumes. The channel must be closed
// when the subscription is torn down.
type Feed interface {
	Subscribe(ctx context.Context) (<-chan domain.LocationUpdate, error)
}

// Holder caches the latest coordinate delivered by the feed. Reads are safe
// from any goroutine; a user missing from the cache simply has no live
// coordinate and callers fall back to the stored profile.
type Holder struct {
	feed   Feed
	logger *slog.Logger

	mu     sync.RWMutex
	coords map[uuid.UUID]geo.Coordinate
}

func NewHolder(feed Feed, logger *slog.Logger) *Holder {
	return &Holder{
		feed:   feed,
		logger: logger,
		coords: make(map[uuid.UUID]geo.Coordinate),
	}
}

// Run subscribes to the feed and applies updates until ctx is canceled or
// the feed closes. It blocks; callers run it on its own goroutine.
func (h *Holder) Run(ctx context.Context) error {
	updates, err := h.feed.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("location holder subscribe: %w", err)
	}
	h.logger.Info("location holder started")

	for update := range updates {
		h.apply(update)
	}

	h.logger.Info("location holder stopped")
	return nil
}

func (h *Holder) apply(update domain.LocationUpdate) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if update.Coordinate == nil {
		delete(h.coords, update.UserID)
		return
	}
	h.coords[update.UserID] = *update.Coordinate
}

// Get returns the latest live coordinate for userID, if any.
func (h *Holder) Get(userID uuid.UUID) (geo.Coordinate, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	coord, ok := h.coords[userID]
	return coord, ok
}
