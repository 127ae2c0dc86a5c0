// Package testutil provides in-memory doubles for the storage interfaces and
// the identity provider, mirroring the ownership semantics of the real
// implementations.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/internal/identity"
	"github.com/todoer/backend/repository"
)

// FakeTodoRepository is an in-memory TodoRepository. Like the Postgres
// implementation, it treats rows of other owners as nonexistent.
type FakeTodoRepository struct {
	mu    sync.Mutex
	todos map[string]*domain.Todo
	clock time.Time
}

func NewFakeTodoRepository() *FakeTodoRepository {
	return &FakeTodoRepository{
		todos: make(map[string]*domain.Todo),
		clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// tick returns strictly increasing timestamps so creation order is total.
func (f *FakeTodoRepository) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *FakeTodoRepository) find(ownerID, id string) (*domain.Todo, error) {
	todo, ok := f.todos[id]
	if !ok || todo.OwnerID != ownerID {
		return nil, domain.ErrTodoNotFound
	}
	return todo, nil
}

func (f *FakeTodoRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	todo, err := f.find(ownerID, id)
	if err != nil {
		return nil, err
	}
	copied := *todo
	return &copied, nil
}

func (f *FakeTodoRepository) List(ctx context.Context, ownerID string) ([]domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var todos []domain.Todo
	for _, todo := range f.todos {
		if todo.OwnerID == ownerID {
			todos = append(todos, *todo)
		}
	}
	sort.Slice(todos, func(i, j int) bool {
		return todos[i].CreatedAt.Before(todos[j].CreatedAt)
	})
	return todos, nil
}

func (f *FakeTodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	if todo == nil {
		return nil, domain.ErrInvalidPayload
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if todo.ID == "" {
		todo.ID = uuid.NewString()
	}
	todo.CreatedAt = f.tick()
	stored := *todo
	f.todos[todo.ID] = &stored
	return todo, nil
}

func (f *FakeTodoRepository) MarkDone(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	todo, err := f.find(ownerID, id)
	if err != nil {
		return nil, err
	}
	if todo.MarkedAsDoneAt == nil {
		done := f.tick()
		todo.MarkedAsDoneAt = &done
	}
	copied := *todo
	return &copied, nil
}

func (f *FakeTodoRepository) MarkUndone(ctx context.Context, ownerID, id string) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	todo, err := f.find(ownerID, id)
	if err != nil {
		return nil, err
	}
	todo.MarkedAsDoneAt = nil
	copied := *todo
	return &copied, nil
}

func (f *FakeTodoRepository) UpdateContent(ctx context.Context, ownerID, id, content string) (*domain.Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	todo, err := f.find(ownerID, id)
	if err != nil {
		return nil, err
	}
	todo.Content = content
	copied := *todo
	return &copied, nil
}

func (f *FakeTodoRepository) Delete(ctx context.Context, ownerID, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.find(ownerID, id); err != nil {
		return err
	}
	delete(f.todos, id)
	return nil
}

// FakeUserRepository is an in-memory UserRepository keyed by (provider, subject).
type FakeUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{users: make(map[string]*domain.User)}
}

func (f *FakeUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeUserRepository) GetBySubject(ctx context.Context, provider, subject string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[provider+"/"+subject]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *FakeUserRepository) Upsert(ctx context.Context, user *domain.User) error {
	if user == nil {
		return domain.ErrInvalidPayload
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	key := user.Provider + "/" + user.Subject
	if existing, ok := f.users[key]; ok {
		existing.Email = user.Email
		existing.Name = user.Name
		existing.UpdatedAt = time.Now()
		*user = *existing
		return nil
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	stored := *user
	f.users[key] = &stored
	return nil
}

// FakeSessionRepository is an in-memory SessionRepository.
type FakeSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewFakeSessionRepository() *FakeSessionRepository {
	return &FakeSessionRepository{sessions: make(map[string]*domain.Session)}
}

func (f *FakeSessionRepository) Get(ctx context.Context, id string) (*domain.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	copied := *session
	return &copied, nil
}

func (f *FakeSessionRepository) Save(ctx context.Context, session *domain.Session) error {
	if session == nil || session.ID == "" {
		return domain.ErrInvalidPayload
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *session
	f.sessions[session.ID] = &stored
	return nil
}

func (f *FakeSessionRepository) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, id)
	return nil
}

// Len reports the number of stored sessions.
func (f *FakeSessionRepository) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sessions)
}

// FakeProvider is an identity.Provider that accepts a single known code.
type FakeProvider struct {
	ProviderName string
	ValidCode    string
	Claims       identity.Claims
}

func (p *FakeProvider) Name() string {
	if p.ProviderName == "" {
		return "fake"
	}
	return p.ProviderName
}

func (p *FakeProvider) AuthCodeURL(state string) string {
	return "https://provider.example/auth?state=" + state
}

func (p *FakeProvider) Exchange(ctx context.Context, code string) (*identity.Claims, error) {
	if code == "" || code != p.ValidCode {
		return nil, domain.ErrAuthFailed
	}
	claims := p.Claims
	return &claims, nil
}

var (
	_ repository.TodoRepository    = (*FakeTodoRepository)(nil)
	_ repository.UserRepository    = (*FakeUserRepository)(nil)
	_ repository.SessionRepository = (*FakeSessionRepository)(nil)
	_ identity.Provider            = (*FakeProvider)(nil)
)
