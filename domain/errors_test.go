package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/todoer/backend/domain"
)

func TestIsDomainError(t *testing.T) {
	if !domain.IsDomainError(domain.ErrTodoNotFound, domain.ErrCodeNotFound) {
		t.Error("ErrTodoNotFound should match NOT_FOUND")
	}
	if domain.IsDomainError(domain.ErrTodoNotFound, domain.ErrCodeInvalid) {
		t.Error("ErrTodoNotFound should not match INVALID")
	}
	if domain.IsDomainError(errors.New("plain"), domain.ErrCodeNotFound) {
		t.Error("plain errors carry no code")
	}
}

func TestWrappedErrorKeepsCode(t *testing.T) {
	inner := errors.New("connection refused")
	wrapped := domain.WrapError(domain.ErrCodeUnauthorized, "code exchange failed", inner)

	if !domain.IsDomainError(wrapped, domain.ErrCodeUnauthorized) {
		t.Error("wrapped error lost its code")
	}
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error must unwrap to the cause")
	}
	// The code survives another layer of fmt wrapping too.
	outer := fmt.Errorf("handling callback: %w", wrapped)
	if !domain.IsDomainError(outer, domain.ErrCodeUnauthorized) {
		t.Error("code lost through fmt.Errorf wrapping")
	}
}

func TestTodoIsDone(t *testing.T) {
	var todo *domain.Todo
	if todo.IsDone() {
		t.Error("nil todo is not done")
	}
	todo = &domain.Todo{}
	if todo.IsDone() {
		t.Error("pending todo is not done")
	}
}
