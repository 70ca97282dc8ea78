package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/srikanthreddy78/SkillSwapApp/internal/domain"
	"github.com/srikanthreddy78/SkillSwapApp/internal/repository"
)

const userColumns = `
	id, display_name, email, bio, skills_taught, skills_learned,
	location_lat, location_lon, share_location,
	avg_rating, review_count, created_at, updated_at
`

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return user, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET display_name = $1, bio = $2, skills_taught = $3, skills_learned = $4,
		    location_lat = $5, location_lon = $6, share_location = $7,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = $8
		RETURNING updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		user.DisplayName, user.Bio,
		pq.Array(user.SkillsTaught), pq.Array(user.SkillsLearned),
		user.LocationLat, user.LocationLon, user.ShareLocation,
		user.ID,
	).Scan(&user.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *userRepository) ListDiscoverable(ctx context.Context, excludeID uuid.UUID) ([]*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id <> $1
		  AND (cardinality(skills_taught) > 0 OR cardinality(skills_learned) > 0)
		ORDER BY created_at DESC, id
	`
	rows, err := r.db.QueryContext(ctx, query, excludeID)
	if err != nil {
		return nil, fmt.Errorf("list discoverable users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.DisplayName, &user.Email, &user.Bio,
		pq.Array(&user.SkillsTaught), pq.Array(&user.SkillsLearned),
		&user.LocationLat, &user.LocationLon, &user.ShareLocation,
		&user.AvgRating, &user.ReviewCount,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// Status is not persisted; callers overlay presence data.
	user.Status = domain.StatusOffline
	return &user, nil
}
