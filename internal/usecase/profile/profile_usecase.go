package profile

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
	"github.com/srikanthreddy78/SkillSwapApp/internal/infrastructure/gemini"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

type ProfileUseCase struct {
	userRepo     repository.UserRepository
	presence     repository.PresenceStore
	locationFeed repository.LocationFeed
	geminiClient *gemini.Client
	logger       *slog.Logger
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	presence repository.PresenceStore,
	locationFeed repository.LocationFeed,
	geminiClient *gemini.Client,
	logger *slog.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:     userRepo,
		presence:     presence,
		locationFeed: locationFeed,
		geminiClient: geminiClient,
		logger:       logger,
	}
}

// UpdateProfileRequest is a partial profile update; nil fields are left
// unchanged.
type UpdateProfileRequest struct {
	DisplayName   *string   `json:"display_name" binding:"omitempty,min=2,max=100"`
	Bio           *string   `json:"bio" binding:"omitempty,max=500"`
	SkillsTaught  *[]string `json:"skills_taught" binding:"omitempty,max=20,dive,skillname"`
	SkillsLearned *[]string `json:"skills_learned" binding:"omitempty,max=20,dive,skillname"`
	ShareLocation *bool     `json:"share_location"`
	LocationLat   *float64  `json:"location_lat" binding:"omitempty,min=-90,max=90"`
	LocationLon   *float64  `json:"location_lon" binding:"omitempty,min=-180,max=180"`
}

// ProfileResponse is a user profile plus the distance from the viewer,
// when both sides share a location.
type ProfileResponse struct {
	*domain.User
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// GetMyProfile returns the current user's own profile with live status.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	uc.overlayStatus(ctx, user)
	return user, nil
}

// GetUserProfile returns another user's profile, with the distance from
// the viewer when both coordinates are known.
func (uc *ProfileUseCase) GetUserProfile(ctx context.Context, targetID, viewerID uuid.UUID) (*ProfileResponse, error) {
	target, err := uc.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	uc.overlayStatus(ctx, target)

	resp := &ProfileResponse{User: target}

	viewer, err := uc.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		// Distance is optional decoration; the profile itself is the answer.
		uc.logger.Warn("viewer profile fetch failed", slog.Any("error", err))
		return resp, nil
	}
	if from, to := viewer.Coordinate(), target.Coordinate(); from != nil && to != nil {
		d := geo.Distance(*from, *to)
		resp.DistanceKm = &d
	}
	return resp, nil
}

// UpdateProfile applies a partial update and broadcasts the resulting
// location-sharing state to the live feed.
func (uc *ProfileUseCase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *UpdateProfileRequest) (*domain.User, error) {
	const op = "profile.UpdateProfile"

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		user.Bio = req.Bio
	}
	if req.SkillsTaught != nil {
		user.SkillsTaught = *req.SkillsTaught
	}
	if req.SkillsLearned != nil {
		user.SkillsLearned = *req.SkillsLearned
	}
	if req.ShareLocation != nil {
		user.ShareLocation = *req.ShareLocation
	}
	if req.LocationLat != nil {
		user.LocationLat = req.LocationLat
	}
	if req.LocationLon != nil {
		user.LocationLon = req.LocationLon
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if uc.locationFeed != nil {
		update := domain.LocationUpdate{UserID: user.ID, Coordinate: user.Coordinate()}
		if err := uc.locationFeed.Publish(ctx, update); err != nil {
			// The stored profile is still authoritative; the feed is an optimization.
			uc.logger.Warn("location feed publish failed",
				slog.String("op", op),
				slog.Any("error", err))
		}
	}

	uc.overlayStatus(ctx, user)
	return user, nil
}

// Heartbeat refreshes the user's presence entry; the TTL takes them back
// offline when heartbeats stop.
func (uc *ProfileUseCase) Heartbeat(ctx context.Context, userID uuid.UUID, status domain.PresenceStatus) error {
	if err := uc.presence.Set(ctx, userID, status); err != nil {
		return fmt.Errorf("profile.Heartbeat: %w", err)
	}
	return nil
}

// SuggestBio asks the AI assistant for a profile bio draft.
func (uc *ProfileUseCase) SuggestBio(ctx context.Context, userID uuid.UUID) (string, error) {
	if uc.geminiClient == nil {
		return "", domain.ErrAIUnavailable
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return "", err
	}
	bio, err := uc.geminiClient.GenerateBio(ctx, user.DisplayName, user.SkillsTaught, user.SkillsLearned)
	if err != nil {
		return "", fmt.Errorf("profile.SuggestBio: %w", err)
	}
	return bio, nil
}

func (uc *ProfileUseCase) overlayStatus(ctx context.Context, user *domain.User) {
	user.Status = domain.StatusOffline
	if uc.presence == nil {
		return
	}
	status, err := uc.presence.Get(ctx, user.ID)
	if err != nil {
		uc.logger.Warn("presence lookup failed", slog.Any("error", err))
		return
	}
	user.Status = status
}
