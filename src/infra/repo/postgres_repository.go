package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"registration/src/core/domain"
	"registration/src/infra/db"
)

// PostgresRepository implements UserRepository using pgx.
type PostgresRepository struct {
	pg  *db.Postgres
	log *slog.Logger
}

// NewPostgresRepository constructs a repository backed by Postgres.
func NewPostgresRepository(pg *db.Postgres, log *slog.Logger) *PostgresRepository {
	return &PostgresRepository{
		pg:  pg,
		log: log,
	}
}

func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pg.Health(ctx); err != nil {
		return domain.NewUnavailableError(err.Error())
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

const userColumns = `user_id, first_name, last_name, email, birth, postal_code, city, created_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Birth, &u.PostalCode, &u.City, &u.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PostgresRepository) Append(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
		INSERT INTO registered_users (user_id, first_name, last_name, email, birth, postal_code, city)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + userColumns

	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	stored, err := scanUser(r.pg.Pool.QueryRow(ctx, q,
		u.ID, u.FirstName, u.LastName, u.Email, u.Birth, u.PostalCode, u.City,
	))
	if err != nil {
		if isUniqueViolation(err) {
			r.log.Warn("user already stored", "user_id", u.ID)
			return nil, domain.NewConflictError("user " + u.ID.String() + " already stored")
		}
		r.log.Error("failed to insert user", "user_id", u.ID, "error", err)
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return stored, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	const q = `
		SELECT ` + userColumns + `
		FROM registered_users
		WHERE user_id = $1
	`
	u, err := scanUser(r.pg.Pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.User, error) {
	const q = `
		SELECT ` + userColumns + `
		FROM registered_users
		ORDER BY position
	`
	rows, err := r.pg.Pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *PostgresRepository) Count(ctx context.Context) (int, error) {
	const q = `SELECT count(*) FROM registered_users`

	var n int
	if err := r.pg.Pool.QueryRow(ctx, q).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}
