package connection_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	mock_repository "github.com/srikanthreddy78/SkillSwapApp/internal/repository/mocks"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/connection"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestSendRejectsSelf(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := connection.NewConnectionUseCase(
		mock_repository.NewMockConnectionRepository(ctrl),
		mock_repository.NewMockUserRepository(ctrl),
		nil, newTestLogger(),
	)

	me := uuid.New()
	if _, err := uc.Send(context.Background(), me, me); !errors.Is(err, domain.ErrCannotConnectSelf) {
		t.Fatalf("got %v, want ErrCannotConnectSelf", err)
	}
}

func TestSendRejectsDuplicate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connRepo := mock_repository.NewMockConnectionRepository(ctrl)
	userRepo := mock_repository.NewMockUserRepository(ctrl)

	requester := uuid.New()
	recipient := uuid.New()

	userRepo.EXPECT().
		GetByID(gomock.Any(), recipient).
		Return(&domain.User{ID: recipient}, nil)
	connRepo.EXPECT().
		GetByUsers(gomock.Any(), requester, recipient).
		Return(&domain.Connection{RequesterID: recipient, RecipientID: requester}, nil)

	uc := connection.NewConnectionUseCase(connRepo, userRepo, nil, newTestLogger())

	if _, err := uc.Send(context.Background(), requester, recipient); !errors.Is(err, domain.ErrConnectionExists) {
		t.Fatalf("got %v, want ErrConnectionExists", err)
	}
}

func TestSendCreatesPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connRepo := mock_repository.NewMockConnectionRepository(ctrl)
	userRepo := mock_repository.NewMockUserRepository(ctrl)

	requester := uuid.New()
	recipient := uuid.New()

	userRepo.EXPECT().
		GetByID(gomock.Any(), recipient).
		Return(&domain.User{ID: recipient}, nil)
	connRepo.EXPECT().
		GetByUsers(gomock.Any(), requester, recipient).
		Return(nil, domain.ErrConnectionNotFound)
	connRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, conn *domain.Connection) error {
			if conn.Status != domain.ConnectionPending {
				t.Errorf("created with status %q, want pending", conn.Status)
			}
			if conn.RequesterID != requester || conn.RecipientID != recipient {
				t.Errorf("created with wrong users: %+v", conn)
			}
			return nil
		})

	uc := connection.NewConnectionUseCase(connRepo, userRepo, nil, newTestLogger())

	conn, err := uc.Send(context.Background(), requester, recipient)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conn.Status != domain.ConnectionPending {
		t.Errorf("status = %q, want pending", conn.Status)
	}
}

func TestRespondOnlyRecipientMayAnswer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connRepo := mock_repository.NewMockConnectionRepository(ctrl)
	userRepo := mock_repository.NewMockUserRepository(ctrl)

	requester := uuid.New()
	recipient := uuid.New()
	conn := &domain.Connection{
		ID:          uuid.New(),
		RequesterID: requester,
		RecipientID: recipient,
		Status:      domain.ConnectionPending,
	}

	connRepo.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)

	uc := connection.NewConnectionUseCase(connRepo, userRepo, nil, newTestLogger())

	if _, err := uc.Respond(context.Background(), requester, conn.ID, true); !errors.Is(err, domain.ErrConnectionNotFound) {
		t.Fatalf("requester responding: got %v, want ErrConnectionNotFound", err)
	}
}

func TestRespondAcceptAndDecline(t *testing.T) {
	tests := []struct {
		name   string
		accept bool
		want   domain.ConnectionStatus
	}{
		{name: "accept", accept: true, want: domain.ConnectionAccepted},
		{name: "decline", accept: false, want: domain.ConnectionDeclined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			connRepo := mock_repository.NewMockConnectionRepository(ctrl)
			userRepo := mock_repository.NewMockUserRepository(ctrl)

			recipient := uuid.New()
			conn := &domain.Connection{
				ID:          uuid.New(),
				RequesterID: uuid.New(),
				RecipientID: recipient,
				Status:      domain.ConnectionPending,
			}

			connRepo.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)
			connRepo.EXPECT().UpdateStatus(gomock.Any(), conn.ID, tt.want).Return(nil)

			uc := connection.NewConnectionUseCase(connRepo, userRepo, nil, newTestLogger())

			got, err := uc.Respond(context.Background(), recipient, conn.ID, tt.accept)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Status != tt.want {
				t.Errorf("status = %q, want %q", got.Status, tt.want)
			}
		})
	}
}

func TestRespondRejectsNonPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connRepo := mock_repository.NewMockConnectionRepository(ctrl)
	userRepo := mock_repository.NewMockUserRepository(ctrl)

	recipient := uuid.New()
	conn := &domain.Connection{
		ID:          uuid.New(),
		RequesterID: uuid.New(),
		RecipientID: recipient,
		Status:      domain.ConnectionAccepted,
	}

	connRepo.EXPECT().GetByID(gomock.Any(), conn.ID).Return(conn, nil)

	uc := connection.NewConnectionUseCase(connRepo, userRepo, nil, newTestLogger())

	if _, err := uc.Respond(context.Background(), recipient, conn.ID, false); !errors.Is(err, domain.ErrConnectionNotPending) {
		t.Fatalf("got %v, want ErrConnectionNotPending", err)
	}
}
