package repository

import (
	"context"

	"github.com/todoer/backend/domain"
)

// TodoRepository is the sole gateway to todo storage. Every method takes the
// owner explicitly and must treat rows of other owners as nonexistent.
type TodoRepository interface {
	GetByID(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	List(ctx context.Context, ownerID string) ([]domain.Todo, error)
	Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error)
	// MarkDone sets marked_as_done_at only when it is currently null, so a
	// repeated call keeps the first timestamp.
	MarkDone(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	MarkUndone(ctx context.Context, ownerID, id string) (*domain.Todo, error)
	UpdateContent(ctx context.Context, ownerID, id, content string) (*domain.Todo, error)
	Delete(ctx context.Context, ownerID, id string) error
}
