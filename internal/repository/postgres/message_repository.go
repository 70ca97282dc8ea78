package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	query := `
		INSERT INTO messages (id, connection_id, sender_id, body)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query, msg.ID, msg.ConnectionID, msg.SenderID, msg.Body).
		Scan(&msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *messageRepository) ListByConnection(ctx context.Context, connectionID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT id, connection_id, sender_id, body, created_at
		FROM messages
		WHERE connection_id = $1
		ORDER BY created_at ASC, id
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &messages, query, connectionID, limit, offset); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return messages, nil
}
