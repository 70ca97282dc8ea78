package connection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/infrastructure/gemini"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

type ConnectionUseCase struct {
	connRepo     repository.ConnectionRepository
	userRepo     repository.UserRepository
	geminiClient *gemini.Client
	logger       *slog.Logger
}

func NewConnectionUseCase(
	connRepo repository.ConnectionRepository,
	userRepo repository.UserRepository,
	geminiClient *gemini.Client,
	logger *slog.Logger,
) *ConnectionUseCase {
	return &ConnectionUseCase{
		connRepo:     connRepo,
		userRepo:     userRepo,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// Send creates a pending connection request from requesterID.
func (uc *ConnectionUseCase) Send(ctx context.Context, requesterID, recipientID uuid.UUID) (*domain.Connection, error) {
	if requesterID == recipientID {
		return nil, domain.ErrCannotConnectSelf
	}

	if _, err := uc.userRepo.GetByID(ctx, recipientID); err != nil {
		return nil, err
	}

	existing, err := uc.connRepo.GetByUsers(ctx, requesterID, recipientID)
	if err != nil && !errors.Is(err, domain.ErrConnectionNotFound) {
		return nil, fmt.Errorf("connection.Send: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrConnectionExists
	}

	conn := &domain.Connection{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      domain.ConnectionPending,
	}
	if err := uc.connRepo.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("connection.Send: %w", err)
	}
	return conn, nil
}

// Respond lets the recipient accept or decline a pending request. Only the
// recipient may respond; acceptance triggers best-effort icebreaker
// generation.
func (uc *ConnectionUseCase) Respond(ctx context.Context, userID, connectionID uuid.UUID, accept bool) (*domain.Connection, error) {
	const op = "connection.Respond"

	conn, err := uc.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.RecipientID != userID {
		// The requester (or a stranger) gets the same answer as "no such
		// connection" so request existence is not leaked.
		return nil, domain.ErrConnectionNotFound
	}
	if conn.Status != domain.ConnectionPending {
		return nil, domain.ErrConnectionNotPending
	}

	status := domain.ConnectionDeclined
	if accept {
		status = domain.ConnectionAccepted
	}
	if err := uc.connRepo.UpdateStatus(ctx, conn.ID, status); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	conn.Status = status

	if accept && uc.geminiClient != nil {
		if icebreakers := uc.generateIcebreakers(ctx, conn); len(icebreakers) > 0 {
			if err := uc.connRepo.UpdateIcebreakers(ctx, conn.ID, icebreakers); err != nil {
				uc.logger.Warn("storing icebreakers failed",
					slog.String("op", op),
					slog.Any("error", err))
			} else {
				conn.Icebreakers = icebreakers
			}
		}
	}

	return conn, nil
}

// List returns the user's connections in the given state.
func (uc *ConnectionUseCase) List(ctx context.Context, userID uuid.UUID, status domain.ConnectionStatus) ([]*domain.Connection, error) {
	conns, err := uc.connRepo.ListForUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("connection.List: %w", err)
	}
	return conns, nil
}

func (uc *ConnectionUseCase) generateIcebreakers(ctx context.Context, conn *domain.Connection) []string {
	requester, err := uc.userRepo.GetByID(ctx, conn.RequesterID)
	if err != nil {
		uc.logger.Warn("icebreakers skipped, requester lookup failed", slog.Any("error", err))
		return nil
	}
	recipient, err := uc.userRepo.GetByID(ctx, conn.RecipientID)
	if err != nil {
		uc.logger.Warn("icebreakers skipped, recipient lookup failed", slog.Any("error", err))
		return nil
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, requester.SkillsTaught, recipient.SkillsTaught)
	if err != nil {
		uc.logger.Warn("icebreaker generation failed", slog.Any("error", err))
		return nil
	}
	return icebreakers
}
