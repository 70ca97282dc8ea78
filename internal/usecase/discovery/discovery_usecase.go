// Package discovery implements proximity-based user discovery: candidate
// loading, the filter pipeline, and pagination.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/geo"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

// LocationSource exposes the latest live coordinate per user. Satisfied by
// *location.Holder; nil-able for deployments without the live feed.
type LocationSource interface {
	Get(userID uuid.UUID) (geo.Coordinate, bool)
}

type DiscoveryUseCase struct {
	userRepo  repository.UserRepository
	presence  repository.PresenceStore
	locations LocationSource
	logger    *slog.Logger
}

func NewDiscoveryUseCase(
	userRepo repository.UserRepository,
	presence repository.PresenceStore,
	locations LocationSource,
	logger *slog.Logger,
) *DiscoveryUseCase {
	return &DiscoveryUseCase{
		userRepo:  userRepo,
		presence:  presence,
		locations: locations,
		logger:    logger,
	}
}

// BrowseRequest carries the discovery filter inputs for one request.
type BrowseRequest struct {
	Skill         string
	Role          domain.RoleFilter
	Query         string
	RadiusEnabled bool
	RadiusKm      int
	Page          int
}

// BrowseResponse is one page of discovery results.
type BrowseResponse struct {
	Users        []*domain.User `json:"users"`
	Pager        Pager          `json:"pager"`
	SkillOptions []string       `json:"skill_options"`
}

// Browse loads the candidate set for currentUserID, applies the filter
// pipeline against a consistent snapshot, and returns the requested page.
func (uc *DiscoveryUseCase) Browse(ctx context.Context, currentUserID uuid.UUID, req *BrowseRequest) (*BrowseResponse, error) {
	const op = "discovery.Browse"

	candidates, err := uc.loadCandidates(ctx, currentUserID)
	if err != nil {
		uc.logger.Error("candidate fetch failed",
			slog.String("op", op),
			slog.String("user_id", currentUserID.String()),
			slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	options := SkillOptions(candidates)
	self := uc.selfCoordinate(ctx, currentUserID)

	filter := domain.FilterState{
		Skill:         req.Skill,
		Role:          req.Role,
		Query:         req.Query,
		RadiusEnabled: req.RadiusEnabled,
		RadiusKm:      req.RadiusKm,
	}
	if filter.Role == "" {
		filter.Role = domain.RoleAny
	}

	filtered := ApplyFilters(candidates, filter, self)

	page := req.Page
	if page == 0 {
		page = 1
	}
	users, pager, err := Paginate(filtered, page)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &BrowseResponse{
		Users:        users,
		Pager:        pager,
		SkillOptions: options,
	}, nil
}

// loadCandidates fetches discoverable users and overlays presence. The
// repository already excludes the current user and skill-less profiles;
// the checks here keep the invariant independent of the implementation.
func (uc *DiscoveryUseCase) loadCandidates(ctx context.Context, selfID uuid.UUID) ([]*domain.User, error) {
	users, err := uc.userRepo.ListDiscoverable(ctx, selfID)
	if err != nil {
		return nil, fmt.Errorf("list discoverable users: %w", err)
	}

	candidates := make([]*domain.User, 0, len(users))
	ids := make([]uuid.UUID, 0, len(users))
	for _, u := range users {
		if u.ID == selfID || !u.Discoverable() {
			continue
		}
		u.Status = domain.StatusOffline
		candidates = append(candidates, u)
		ids = append(ids, u.ID)
	}

	if uc.presence != nil && len(ids) > 0 {
		statuses, err := uc.presence.GetMany(ctx, ids)
		if err != nil {
			// Presence is cosmetic; candidates stay offline on failure.
			uc.logger.Warn("presence lookup failed", slog.Any("error", err))
		} else {
			for _, u := range candidates {
				if status, ok := statuses[u.ID]; ok {
					u.Status = status
				}
			}
		}
	}

	return candidates, nil
}

// selfCoordinate resolves the current user's own coordinate: live feed
// first, stored profile second, nil when neither knows it.
func (uc *DiscoveryUseCase) selfCoordinate(ctx context.Context, userID uuid.UUID) *geo.Coordinate {
	if uc.locations != nil {
		if coord, ok := uc.locations.Get(userID); ok {
			return &coord
		}
	}

	self, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warn("self profile fetch failed, skipping radius filter",
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return nil
	}
	return self.Coordinate()
}

// SkillOptions returns the distinct skill names across all candidates'
// taught and learned lists, sorted, with the AllSkills sentinel first.
func SkillOptions(candidates []*domain.User) []string {
	seen := make(map[string]struct{})
	var names []string
	add := func(skills []string) {
		for _, s := range skills {
			if s == "" {
				continue
			}
			if _, ok := seen[s]; ok {
				continue
			}
			seen[s] = struct{}{}
			names = append(names, s)
		}
	}
	for _, u := range candidates {
		add(u.SkillsTaught)
		add(u.SkillsLearned)
	}
	sort.Strings(names)
	return append([]string{domain.AllSkills}, names...)
}
