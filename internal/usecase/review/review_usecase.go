package review

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

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create stores a rating for subjectID. A reviewer gets one review per
// subject; the subject's aggregates are refreshed by the repository.
func (uc *ReviewUseCase) Create(ctx context.Context, reviewerID, subjectID uuid.UUID, rating int, comment string) (*domain.Review, error) {
	const op = "review.Create"

	if reviewerID == subjectID {
		return nil, domain.ErrCannotReviewSelf
	}
	if rating < 1 || rating > 5 {
		return nil, domain.ErrInvalidInput
	}

	if _, err := uc.userRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	if _, err := uc.reviewRepo.GetByUsers(ctx, reviewerID, subjectID); err == nil {
		return nil, domain.ErrReviewExists
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	review := &domain.Review{
		ID:         uuid.New(),
		ReviewerID: reviewerID,
		SubjectID:  subjectID,
		Rating:     rating,
	}
	if comment = strings.TrimSpace(comment); comment != "" {
		review.Comment = &comment
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		uc.logger.Error("creating review failed",
			slog.String("op", op),
			slog.Any("error", err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return review, nil
}

const defaultReviewLimit = 20

// List returns reviews left for subjectID, newest first.
func (uc *ReviewUseCase) List(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*domain.Review, error) {
	const op = "review.List"

	if _, err := uc.userRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = defaultReviewLimit
	}
	if offset < 0 {
		offset = 0
	}

	reviews, err := uc.reviewRepo.ListForUser(ctx, subjectID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reviews, nil
}
