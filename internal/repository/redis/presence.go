// Package redis implements the realtime stores backed by Redis: the
// presence keys and the live location feed.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

const presenceKeyPrefix = "presence:"

// PresenceStore keeps per-user status under a TTL; an expired or missing
// key reads as offline.
type PresenceStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewPresenceStore(client *goredis.Client, ttl time.Duration) repository.PresenceStore {
	return &PresenceStore{client: client, ttl: ttl}
}

func presenceKey(userID uuid.UUID) string {
	return presenceKeyPrefix + userID.String()
}

func (s *PresenceStore) Set(ctx context.Context, userID uuid.UUID, status domain.PresenceStatus) error {
	if err := s.client.Set(ctx, presenceKey(userID), string(status), s.ttl).Err(); err != nil {
		return fmt.Errorf("set presence: %w", err)
	}
	return nil
}

func (s *PresenceStore) Get(ctx context.Context, userID uuid.UUID) (domain.PresenceStatus, error) {
	val, err := s.client.Get(ctx, presenceKey(userID)).Result()
	if err != nil {
		if err == goredis.Nil {
			return domain.StatusOffline, nil
		}
		return domain.StatusOffline, fmt.Errorf("get presence: %w", err)
	}
	return domain.PresenceStatus(val), nil
}

func (s *PresenceStore) GetMany(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]domain.PresenceStatus, error) {
	statuses := make(map[uuid.UUID]domain.PresenceStatus, len(userIDs))
	if len(userIDs) == 0 {
		return statuses, nil
	}

	keys := make([]string, len(userIDs))
	for i, id := range userIDs {
		keys[i] = presenceKey(id)
	}

	vals, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("mget presence: %w", err)
	}

	for i, v := range vals {
		if v == nil {
			statuses[userIDs[i]] = domain.StatusOffline
			continue
		}
		if str, ok := v.(string); ok {
			statuses[userIDs[i]] = domain.PresenceStatus(str)
		} else {
			statuses[userIDs[i]] = domain.StatusOffline
		}
	}
	return statuses, nil
}
