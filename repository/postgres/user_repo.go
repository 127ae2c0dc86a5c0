package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/repository"
)

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository instantiates a Postgres-backed user repository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
	SELECT id, provider, subject, email, name, created_at, updated_at
	FROM users
	WHERE id = $1
	`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetBySubject(ctx context.Context, provider, subject string) (*domain.User, error) {
	const query = `
	SELECT id, provider, subject, email, name, created_at, updated_at
	FROM users
	WHERE provider = $1 AND subject = $2
	`
	return scanUser(r.pool.QueryRow(ctx, query, provider, subject))
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO users (id, provider, subject, email, name)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (provider, subject) DO UPDATE
	SET email = EXCLUDED.email,
		name = EXCLUDED.name,
		updated_at = NOW()
	RETURNING id, created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		user.ID,
		user.Provider,
		user.Subject,
		user.Email,
		user.Name,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Provider,
		&user.Subject,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
