package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	connRepo    repository.ConnectionRepository
	logger      *slog.Logger
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	connRepo repository.ConnectionRepository,
	logger *slog.Logger,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		connRepo:    connRepo,
		logger:      logger,
	}
}

// Send stores a message on an accepted connection the sender belongs to.
func (uc *ChatUseCase) Send(ctx context.Context, senderID, connectionID uuid.UUID, body string) (*domain.Message, error) {
	const op = "chat.Send"

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, domain.ErrInvalidInput
	}

	conn, err := uc.accessibleConnection(ctx, senderID, connectionID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:           uuid.New(),
		ConnectionID: conn.ID,
		SenderID:     senderID,
		Body:         body,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		uc.logger.Error("creating message failed",
			slog.String("op", op),
			slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return msg, nil
}

const defaultHistoryLimit = 50

// List returns the message history of a connection the user belongs to,
// oldest first.
func (uc *ChatUseCase) List(ctx context.Context, userID, connectionID uuid.UUID, limit, offset int) ([]*domain.Message, error) {
	const op = "chat.List"

	if _, err := uc.accessibleConnection(ctx, userID, connectionID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	messages, err := uc.messageRepo.ListByConnection(ctx, connectionID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return messages, nil
}

// accessibleConnection loads the connection and checks the user may chat on
// it. A connection the user is not part of reads as not found, and one that
// is not accepted yet is not a chat channel.
func (uc *ChatUseCase) accessibleConnection(ctx context.Context, userID, connectionID uuid.UUID) (*domain.Connection, error) {
	conn, err := uc.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		if errors.Is(err, domain.ErrConnectionNotFound) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	if !conn.HasUser(userID) {
		return nil, domain.ErrConnectionNotFound
	}
	if conn.Status != domain.ConnectionAccepted {
		return nil, domain.ErrNotConnected
	}
	return conn, nil
}
