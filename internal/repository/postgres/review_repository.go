package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

type reviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepository(db *sqlx.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts the review and refreshes the subject's rating aggregates
// in the same transaction so discovery reads never see them out of sync.
func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin review tx: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO reviews (id, reviewer_id, subject_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err = tx.QueryRowContext(ctx, insert,
		review.ID, review.ReviewerID, review.SubjectID, review.Rating, review.Comment,
	).Scan(&review.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrReviewExists
		}
		return fmt.Errorf("insert review: %w", err)
	}

	aggregate := `
		UPDATE users
		SET avg_rating = sub.avg_rating,
		    review_count = sub.review_count,
		    updated_at = CURRENT_TIMESTAMP
		FROM (
			SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS review_count
			FROM reviews
			WHERE subject_id = $1
		) AS sub
		WHERE users.id = $1
	`
	if _, err := tx.ExecContext(ctx, aggregate, review.SubjectID); err != nil {
		return fmt.Errorf("refresh rating aggregates: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit review tx: %w", err)
	}
	return nil
}

func (r *reviewRepository) GetByUsers(ctx context.Context, reviewerID, subjectID uuid.UUID) (*domain.Review, error) {
	var review domain.Review
	query := `
		SELECT id, reviewer_id, subject_id, rating, comment, created_at
		FROM reviews
		WHERE reviewer_id = $1 AND subject_id = $2
	`
	err := r.db.GetContext(ctx, &review, query, reviewerID, subjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("get review by users: %w", err)
	}
	return &review, nil
}

func (r *reviewRepository) ListForUser(ctx context.Context, subjectID uuid.UUID, limit, offset int) ([]*domain.Review, error) {
	var reviews []*domain.Review
	query := `
		SELECT id, reviewer_id, subject_id, rating, comment, created_at
		FROM reviews
		WHERE subject_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.db.SelectContext(ctx, &reviews, query, subjectID, limit, offset); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}
