package todo

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/repository"
)

// UseCase is the item service. Every operation takes the owner explicitly;
// the repository refuses to see other owners' rows, so a foreign item id
// behaves exactly like a nonexistent one.
type UseCase struct {
	todos  repository.TodoRepository
	logger *zap.Logger
}

func New(todos repository.TodoRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		todos:  todos,
		logger: logger,
	}
}

// Add stores a new todo with the raw Markdown source untouched. Content must
// be non-empty after trimming; the trimmed form is what gets stored, matching
// what the entry form submits.
func (uc *UseCase) Add(ctx context.Context, ownerID, content string) (*domain.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}

	created, err := uc.todos.Create(ctx, &domain.Todo{
		OwnerID: ownerID,
		Content: content,
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("todo created", zap.String("todo_id", created.ID))
	return created, nil
}

// List returns all of the owner's todos ordered by creation time, oldest
// first. Each call is a fresh query.
func (uc *UseCase) List(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	return uc.todos.List(ctx, ownerID)
}

// MarkDone records the completion time. Repeat calls succeed without moving
// the timestamp of the first successful call.
func (uc *UseCase) MarkDone(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	return uc.todos.MarkDone(ctx, ownerID, id)
}

// MarkUndone clears the completion time, returning the item to its pending
// state.
func (uc *UseCase) MarkUndone(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	return uc.todos.MarkUndone(ctx, ownerID, id)
}

// Edit replaces the content of an existing todo. The creation time is never
// touched.
func (uc *UseCase) Edit(ctx context.Context, ownerID, id, content string) (*domain.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, domain.ErrEmptyContent
	}
	return uc.todos.UpdateContent(ctx, ownerID, id, content)
}

// Remove hard-deletes the todo.
func (uc *UseCase) Remove(ctx context.Context, ownerID, id string) error {
	return uc.todos.Delete(ctx, ownerID, id)
}
