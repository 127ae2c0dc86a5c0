package todo_test

import (
	"context"
	"errors"
	"testing"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/internal/testutil"
	todoUC "github.com/todoer/backend/usecase/todo"
)

func newUseCase() *todoUC.UseCase {
	return todoUC.New(testutil.NewFakeTodoRepository(), nil)
}

func TestAddAndList(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Add(ctx, "alice", "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if created.ID == "" {
		t.Error("expected generated id")
	}
	if created.MarkedAsDoneAt != nil {
		t.Error("new todo must start pending")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected created_at to be set")
	}

	todos, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(todos))
	}
	if todos[0].Content != "Buy milk" {
		t.Errorf("expected content %q, got %q", "Buy milk", todos[0].Content)
	}
}

func TestAddRejectsEmptyContent(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\n\t"} {
		if _, err := uc.Add(ctx, "alice", content); !errors.Is(err, domain.ErrEmptyContent) {
			t.Errorf("Add(%q): expected ErrEmptyContent, got %v", content, err)
		}
	}

	todos, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(todos) != 0 {
		t.Errorf("rejected Add must not create items, got %d", len(todos))
	}
}

func TestContentRoundTripsUnchanged(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	source := "# Heading\n\n- [ ] *emphasis* and `code`\n\n<script>alert(1)</script>"
	created, err := uc.Add(ctx, "alice", source)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	todos, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if todos[0].Content != source {
		t.Errorf("stored content mutated:\nwant %q\ngot  %q", source, todos[0].Content)
	}

	if _, err := uc.MarkDone(ctx, "alice", created.ID); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}
	got, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if got[0].Content != source {
		t.Errorf("MarkDone mutated content: %q", got[0].Content)
	}
}

func TestListOrderedByCreation(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	for _, content := range []string{"first", "second", "third"} {
		if _, err := uc.Add(ctx, "alice", content); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	todos, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, content := range want {
		if todos[i].Content != content {
			t.Errorf("position %d: expected %q, got %q", i, content, todos[i].Content)
		}
	}
}

func TestMarkDoneIdempotent(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Add(ctx, "alice", "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	first, err := uc.MarkDone(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}
	if first.MarkedAsDoneAt == nil {
		t.Fatal("expected marked_as_done_at to be set")
	}

	second, err := uc.MarkDone(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("repeat MarkDone failed: %v", err)
	}
	if second.MarkedAsDoneAt == nil || !second.MarkedAsDoneAt.Equal(*first.MarkedAsDoneAt) {
		t.Errorf("repeat MarkDone moved the timestamp: first %v, second %v",
			first.MarkedAsDoneAt, second.MarkedAsDoneAt)
	}
	if !second.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("MarkDone changed created_at: %v -> %v", created.CreatedAt, second.CreatedAt)
	}
}

func TestMarkUndoneReversesDone(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Add(ctx, "alice", "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := uc.MarkDone(ctx, "alice", created.ID); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}

	undone, err := uc.MarkUndone(ctx, "alice", created.ID)
	if err != nil {
		t.Fatalf("MarkUndone failed: %v", err)
	}
	if undone.MarkedAsDoneAt != nil {
		t.Error("expected marked_as_done_at to be cleared")
	}
	if !undone.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("MarkUndone changed created_at: %v -> %v", created.CreatedAt, undone.CreatedAt)
	}
}

func TestEdit(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Add(ctx, "alice", "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, err := uc.Edit(ctx, "alice", created.ID, "Buy **oat** milk")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if updated.Content != "Buy **oat** milk" {
		t.Errorf("unexpected content %q", updated.Content)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("Edit changed created_at: %v -> %v", created.CreatedAt, updated.CreatedAt)
	}

	if _, err := uc.Edit(ctx, "alice", created.ID, "  "); !errors.Is(err, domain.ErrEmptyContent) {
		t.Errorf("expected ErrEmptyContent for blank edit, got %v", err)
	}
}

func TestOwnershipIsolation(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	aliceTodo, err := uc.Add(ctx, "alice", "Alice's secret")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := uc.Add(ctx, "bob", "Bob's list"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	bobView, err := uc.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	for _, todo := range bobView {
		if todo.OwnerID != "bob" {
			t.Errorf("bob's list leaked a foreign item: %+v", todo)
		}
	}
	if len(bobView) != 1 {
		t.Errorf("expected bob to see exactly his own item, got %d", len(bobView))
	}

	// A foreign id must be indistinguishable from a missing one.
	if _, err := uc.MarkDone(ctx, "bob", aliceTodo.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Errorf("MarkDone on foreign item: expected ErrTodoNotFound, got %v", err)
	}
	if _, err := uc.Edit(ctx, "bob", aliceTodo.ID, "hijacked"); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Errorf("Edit on foreign item: expected ErrTodoNotFound, got %v", err)
	}
	if err := uc.Remove(ctx, "bob", aliceTodo.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Errorf("Remove on foreign item: expected ErrTodoNotFound, got %v", err)
	}

	// Alice's item survived all of it.
	aliceView, err := uc.List(ctx, "alice")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(aliceView) != 1 || aliceView[0].Content != "Alice's secret" || aliceView[0].IsDone() {
		t.Errorf("alice's item was affected by bob's attempts: %+v", aliceView)
	}
}

func TestRemoveThenAnythingIsNotFound(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Add(ctx, "alice", "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := uc.Remove(ctx, "alice", created.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	if _, err := uc.MarkDone(ctx, "alice", created.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Errorf("MarkDone after Remove: expected ErrTodoNotFound, got %v", err)
	}
	if _, err := uc.MarkUndone(ctx, "alice", created.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Errorf("MarkUndone after Remove: expected ErrTodoNotFound, got %v", err)
	}
	if err := uc.Remove(ctx, "alice", created.ID); !errors.Is(err, domain.ErrTodoNotFound) {
		t.Errorf("repeat Remove: expected ErrTodoNotFound, got %v", err)
	}
}

func TestFullLifecycleScenario(t *testing.T) {
	uc := newUseCase()
	ctx := context.Background()

	created, err := uc.Add(ctx, "alice", "Buy milk")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	todos, _ := uc.List(ctx, "alice")
	if len(todos) != 1 || todos[0].MarkedAsDoneAt != nil {
		t.Fatalf("after Add: expected one pending item, got %+v", todos)
	}

	if _, err := uc.MarkDone(ctx, "alice", created.ID); err != nil {
		t.Fatalf("MarkDone failed: %v", err)
	}
	todos, _ = uc.List(ctx, "alice")
	if len(todos) != 1 || todos[0].MarkedAsDoneAt == nil {
		t.Fatalf("after MarkDone: expected one done item, got %+v", todos)
	}

	if err := uc.Remove(ctx, "alice", created.ID); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	todos, _ = uc.List(ctx, "alice")
	if len(todos) != 0 {
		t.Fatalf("after Remove: expected empty list, got %+v", todos)
	}
}
