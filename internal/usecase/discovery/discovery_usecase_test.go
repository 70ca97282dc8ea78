package discovery_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
	mock_repository "github.com/srikanthreddy78/SkillSwapApp/internal/repository/mocks"
	"github.com/srikanthreddy78/SkillSwapApp/internal/usecase/discovery"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

type staticLocations map[uuid.UUID]geo.Coordinate

func (s staticLocations) Get(userID uuid.UUID) (geo.Coordinate, bool) {
	coord, ok := s[userID]
	return coord, ok
}

func discoverableUser(name string, taught []string) *domain.User {
	return &domain.User{
		ID:           uuid.New(),
		DisplayName:  name,
		Email:        name + "@example.com",
		SkillsTaught: taught,
	}
}

func TestBrowseEnforcesCandidateInvariants(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selfID := uuid.New()
	self := &domain.User{ID: selfID, DisplayName: "me", SkillsTaught: []string{"Go"}}
	skilled := discoverableUser("skilled", []string{"Guitar"})
	skillless := &domain.User{ID: uuid.New(), DisplayName: "empty"}

	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	// A sloppy repository that returns self and a skill-less user anyway.
	userRepo.EXPECT().
		ListDiscoverable(gomock.Any(), selfID).
		Return([]*domain.User{self, skilled, skillless}, nil)
	userRepo.EXPECT().
		GetByID(gomock.Any(), selfID).
		Return(self, nil)
	presence.EXPECT().
		GetMany(gomock.Any(), []uuid.UUID{skilled.ID}).
		Return(map[uuid.UUID]domain.PresenceStatus{skilled.ID: domain.StatusOnline}, nil)

	uc := discovery.NewDiscoveryUseCase(userRepo, presence, nil, newTestLogger())

	resp, err := uc.Browse(context.Background(), selfID, &discovery.BrowseRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].ID != skilled.ID {
		t.Fatalf("expected only the skilled candidate, got %d users", len(resp.Users))
	}
	if resp.Users[0].Status != domain.StatusOnline {
		t.Errorf("status = %q, want online from presence store", resp.Users[0].Status)
	}

	wantOptions := []string{domain.AllSkills, "Guitar"}
	if !reflect.DeepEqual(resp.SkillOptions, wantOptions) {
		t.Errorf("skill options = %v, want %v", resp.SkillOptions, wantOptions)
	}
}

func TestBrowsePresenceFailureDegradesToOffline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selfID := uuid.New()
	candidate := discoverableUser("candidate", []string{"Chess"})

	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	userRepo.EXPECT().
		ListDiscoverable(gomock.Any(), selfID).
		Return([]*domain.User{candidate}, nil)
	userRepo.EXPECT().
		GetByID(gomock.Any(), selfID).
		Return(&domain.User{ID: selfID}, nil)
	presence.EXPECT().
		GetMany(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("redis down"))

	uc := discovery.NewDiscoveryUseCase(userRepo, presence, nil, newTestLogger())

	resp, err := uc.Browse(context.Background(), selfID, &discovery.BrowseRequest{})
	if err != nil {
		t.Fatalf("presence failure must not fail the request: %v", err)
	}
	if resp.Users[0].Status != domain.StatusOffline {
		t.Errorf("status = %q, want offline fallback", resp.Users[0].Status)
	}
}

func TestBrowseFetchFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selfID := uuid.New()
	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	wantErr := errors.New("connection refused")
	userRepo.EXPECT().
		ListDiscoverable(gomock.Any(), selfID).
		Return(nil, wantErr)

	uc := discovery.NewDiscoveryUseCase(userRepo, presence, nil, newTestLogger())

	_, err := uc.Browse(context.Background(), selfID, &discovery.BrowseRequest{})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped fetch error, got %v", err)
	}
}

func TestBrowseUsesLiveCoordinateBeforeProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selfID := uuid.New()
	lat, lon := 0.0440, 0.0
	near := &domain.User{
		ID:            uuid.New(),
		DisplayName:   "near",
		SkillsTaught:  []string{"Guitar"},
		ShareLocation: true,
		LocationLat:   &lat,
		LocationLon:   &lon,
	}
	hidden := discoverableUser("hidden", []string{"Guitar"})

	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	userRepo.EXPECT().
		ListDiscoverable(gomock.Any(), selfID).
		Return([]*domain.User{near, hidden}, nil)
	presence.EXPECT().
		GetMany(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]domain.PresenceStatus{}, nil)
	// No GetByID expectation: the live source must satisfy the lookup.

	locations := staticLocations{selfID: geo.Coordinate{Lat: 0, Lon: 0}}
	uc := discovery.NewDiscoveryUseCase(userRepo, presence, locations, newTestLogger())

	resp, err := uc.Browse(context.Background(), selfID, &discovery.BrowseRequest{
		RadiusEnabled: true,
		RadiusKm:      5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Users) != 1 || resp.Users[0].DisplayName != "near" {
		t.Fatalf("expected only the nearby candidate, got %v", len(resp.Users))
	}
}

func TestBrowsePageOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	selfID := uuid.New()
	userRepo := mock_repository.NewMockUserRepository(ctrl)
	presence := mock_repository.NewMockPresenceStore(ctrl)

	userRepo.EXPECT().
		ListDiscoverable(gomock.Any(), selfID).
		Return([]*domain.User{discoverableUser("only", []string{"Guitar"})}, nil)
	userRepo.EXPECT().
		GetByID(gomock.Any(), selfID).
		Return(&domain.User{ID: selfID}, nil)
	presence.EXPECT().
		GetMany(gomock.Any(), gomock.Any()).
		Return(map[uuid.UUID]domain.PresenceStatus{}, nil)

	uc := discovery.NewDiscoveryUseCase(userRepo, presence, nil, newTestLogger())

	_, err := uc.Browse(context.Background(), selfID, &discovery.BrowseRequest{Page: 7})
	if !errors.Is(err, domain.ErrPageOutOfRange) {
		t.Fatalf("expected ErrPageOutOfRange, got %v", err)
	}
}
