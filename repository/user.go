package repository

import (
	"context"

	"github.com/todoer/backend/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetBySubject(ctx context.Context, provider, subject string) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
}
