package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

const locationChannel = "location:updates"

// LocationFeed broadcasts location-sharing changes over a Redis pub/sub
// channel. The profile layer publishes; the location holder subscribes.
type LocationFeed struct {
	client *goredis.Client
	logger *slog.Logger
}

func NewLocationFeed(client *goredis.Client, logger *slog.Logger) repository.LocationFeed {
	return &LocationFeed{client: client, logger: logger}
}

type locationMessage struct {
	UserID string   `json:"user_id"`
	Lat    *float64 `json:"lat"`
	Lon    *float64 `json:"lon"`
}

func (f *LocationFeed) Publish(ctx context.Context, update domain.LocationUpdate) error {
	msg := locationMessage{UserID: update.UserID.String()}
	if update.Coordinate != nil {
		msg.Lat = &update.Coordinate.Lat
		msg.Lon = &update.Coordinate.Lon
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal location update: %w", err)
	}
	if err := f.client.Publish(ctx, locationChannel, payload).Err(); err != nil {
		return fmt.Errorf("publish location update: %w", err)
	}
	return nil
}

// Subscribe delivers feed updates until ctx is canceled; the returned
// channel is closed and the underlying subscription torn down on exit.
// Malformed payloads are logged and skipped.
func (f *LocationFeed) Subscribe(ctx context.Context) (<-chan domain.LocationUpdate, error) {
	sub := f.client.Subscribe(ctx, locationChannel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("subscribe to location feed: %w", err)
	}

	out := make(chan domain.LocationUpdate)
	go func() {
		defer close(out)
		defer sub.Close()

		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				update, err := decodeLocationMessage(msg.Payload)
				if err != nil {
					f.logger.Warn("dropping malformed location update",
						slog.Any("error", err))
					continue
				}
				select {
				case out <- update:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}

func decodeLocationMessage(payload string) (domain.LocationUpdate, error) {
	var msg locationMessage
	if err := json.Unmarshal([]byte(payload), &msg); err != nil {
		return domain.LocationUpdate{}, err
	}
	userID, err := uuid.Parse(msg.UserID)
	if err != nil {
		return domain.LocationUpdate{}, fmt.Errorf("parse user id: %w", err)
	}

	update := domain.LocationUpdate{UserID: userID}
	// A half-present pair is treated as no coordinate, same as absence.
	if msg.Lat != nil && msg.Lon != nil {
		update.Coordinate = &geo.Coordinate{Lat: *msg.Lat, Lon: *msg.Lon}
	}
	return update, nil
}
