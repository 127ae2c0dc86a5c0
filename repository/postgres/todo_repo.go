package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/repository"
)

type todoRepository struct {
	pool *pgxpool.Pool
}

// NewTodoRepository returns a Postgres-backed implementation of TodoRepository.
// Ownership is enforced inside every statement: a row belonging to another
// owner matches nothing, which is what makes foreign and absent ids
// indistinguishable to callers.
func NewTodoRepository(pool *pgxpool.Pool) repository.TodoRepository {
	return &todoRepository{pool: pool}
}

func (r *todoRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	const query = `
	SELECT id, owner_id, content, created_at, marked_as_done_at
	FROM todos
	WHERE id = $1 AND owner_id = $2
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)
	return scanTodo(row)
}

func (r *todoRepository) List(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	const query = `
	SELECT id, owner_id, content, created_at, marked_as_done_at
	FROM todos
	WHERE owner_id = $1
	ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var todos []domain.Todo
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	return todos, rows.Err()
}

func (r *todoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if todo == nil {
		return nil, domain.ErrInvalidPayload
	}
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO todos (id, owner_id, content)
	VALUES ($1, $2, $3)
	RETURNING created_at
	`

	if err := r.pool.QueryRow(ctx, query,
		todo.ID,
		todo.OwnerID,
		todo.Content,
	).Scan(&todo.CreatedAt); err != nil {
		return nil, err
	}

	return todo, nil
}

func (r *todoRepository) MarkDone(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	// COALESCE keeps the original timestamp when the row is already done.
	const query = `
	UPDATE todos
	SET marked_as_done_at = COALESCE(marked_as_done_at, NOW())
	WHERE id = $1 AND owner_id = $2
	RETURNING id, owner_id, content, created_at, marked_as_done_at
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)
	return scanTodo(row)
}

func (r *todoRepository) MarkUndone(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	const query = `
	UPDATE todos
	SET marked_as_done_at = NULL
	WHERE id = $1 AND owner_id = $2
	RETURNING id, owner_id, content, created_at, marked_as_done_at
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID)
	return scanTodo(row)
}

func (r *todoRepository) UpdateContent(ctx context.Context, ownerID, id, content string) (*domain.Todo, error) {
	const query = `
	UPDATE todos
	SET content = $3
	WHERE id = $1 AND owner_id = $2
	RETURNING id, owner_id, content, created_at, marked_as_done_at
	`
	row := r.pool.QueryRow(ctx, query, id, ownerID, content)
	return scanTodo(row)
}

func (r *todoRepository) Delete(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM todos WHERE id = $1 AND owner_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func scanTodo(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Todo, error) {
	var todo domain.Todo
	if err := row.Scan(
		&todo.ID,
		&todo.OwnerID,
		&todo.Content,
		&todo.CreatedAt,
		&todo.MarkedAsDoneAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, err
	}
	return &todo, nil
}
