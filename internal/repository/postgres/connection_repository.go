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

const connectionColumns = `
	id, requester_id, recipient_id, status, icebreakers, created_at, updated_at
`

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	if conn.ID == uuid.Nil {
		conn.ID = uuid.New()
	}
	query := `
		INSERT INTO connections (id, requester_id, recipient_id, status, icebreakers)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRowContext(
		ctx, query,
		conn.ID, conn.RequesterID, conn.RecipientID, conn.Status, pq.Array(conn.Icebreakers),
	).Scan(&conn.CreatedAt, &conn.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConnectionExists
		}
		return fmt.Errorf("create connection: %w", err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Connection, error) {
	query := `SELECT ` + connectionColumns + ` FROM connections WHERE id = $1`

	conn, err := scanConnection(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("get connection by id: %w", err)
	}
	return conn, nil
}

func (r *connectionRepository) GetByUsers(ctx context.Context, userA, userB uuid.UUID) (*domain.Connection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM connections
		WHERE (requester_id = $1 AND recipient_id = $2)
		   OR (requester_id = $2 AND recipient_id = $1)
	`
	conn, err := scanConnection(r.db.QueryRowContext(ctx, query, userA, userB))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, fmt.Errorf("get connection by users: %w", err)
	}
	return conn, nil
}

func (r *connectionRepository) ListForUser(ctx context.Context, userID uuid.UUID, status domain.ConnectionStatus) ([]*domain.Connection, error) {
	query := `
		SELECT ` + connectionColumns + `
		FROM connections
		WHERE (requester_id = $1 OR recipient_id = $1)
		  AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		return nil, fmt.Errorf("list connections: %w", err)
	}
	defer rows.Close()

	var conns []*domain.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, fmt.Errorf("scan connection row: %w", err)
		}
		conns = append(conns, conn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate connection rows: %w", err)
	}
	return conns, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.ConnectionStatus) error {
	query := `
		UPDATE connections
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update connection status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConnectionNotFound
	}
	return nil
}

func (r *connectionRepository) UpdateIcebreakers(ctx context.Context, id uuid.UUID, icebreakers []string) error {
	query := `
		UPDATE connections
		SET icebreakers = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, pq.Array(icebreakers), id)
	if err != nil {
		return fmt.Errorf("update connection icebreakers: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrConnectionNotFound
	}
	return nil
}

func scanConnection(row rowScanner) (*domain.Connection, error) {
	var conn domain.Connection
	err := row.Scan(
		&conn.ID, &conn.RequesterID, &conn.RecipientID, &conn.Status,
		pq.Array(&conn.Icebreakers), &conn.CreatedAt, &conn.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
