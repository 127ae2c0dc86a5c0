package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/internal/identity"
	"github.com/todoer/backend/repository"
)

// UseCase implements the identity provider integration: it exchanges
// provider assertions for local sessions and resolves sessions back to users.
type UseCase struct {
	provider   identity.Provider
	users      repository.UserRepository
	sessions   repository.SessionRepository
	state      *stateSigner
	sessionTTL time.Duration
	logger     *zap.Logger
}

type Config struct {
	StateSecret []byte
	StateTTL    time.Duration
	SessionTTL  time.Duration
}

func New(provider identity.Provider, users repository.UserRepository, sessions repository.SessionRepository, cfg Config, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 24 * time.Hour
	}
	return &UseCase{
		provider:   provider,
		users:      users,
		sessions:   sessions,
		state:      newStateSigner(cfg.StateSecret, cfg.StateTTL),
		sessionTTL: cfg.SessionTTL,
		logger:     logger,
	}
}

// LoginURL returns the provider sign-in URL carrying a freshly signed state
// token.
func (uc *UseCase) LoginURL() (string, error) {
	state, err := uc.state.Issue()
	if err != nil {
		return "", err
	}
	return uc.provider.AuthCodeURL(state), nil
}

// HandleCallback verifies the state, exchanges the authorization code,
// upserts the user, and establishes a session. Every failure path leaves no
// partial session behind.
func (uc *UseCase) HandleCallback(ctx context.Context, code, state string) (*domain.Session, error) {
	if err := uc.state.Verify(state); err != nil {
		uc.logger.Warn("oauth state rejected", zap.Error(err))
		return nil, domain.ErrAuthFailed
	}

	claims, err := uc.provider.Exchange(ctx, code)
	if err != nil {
		uc.logger.Warn("assertion exchange failed", zap.Error(err))
		return nil, domain.ErrAuthFailed
	}

	user := &domain.User{
		ID:       uuid.NewString(),
		Provider: uc.provider.Name(),
		Subject:  claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
	}
	// Upsert keeps the existing row id when the subject is already known.
	if err := uc.users.Upsert(ctx, user); err != nil {
		return nil, err
	}

	now := time.Now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(uc.sessionTTL),
	}
	if err := uc.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	uc.logger.Info("session established",
		zap.String("provider", uc.provider.Name()),
		zap.String("user_id", user.ID),
	)
	return session, nil
}

// ResolveSession maps a session id from the cookie to the owning user.
func (uc *UseCase) ResolveSession(ctx context.Context, sessionID string) (*domain.User, error) {
	if sessionID == "" {
		return nil, domain.ErrUnauthorized
	}
	session, err := uc.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	if session.IsExpired(time.Now()) {
		_ = uc.sessions.Delete(ctx, sessionID)
		return nil, domain.ErrUnauthorized
	}
	return uc.users.GetByID(ctx, session.UserID)
}

// CurrentUser returns the profile for an already-authenticated user id.
func (uc *UseCase) CurrentUser(ctx context.Context, userID string) (*domain.User, error) {
	return uc.users.GetByID(ctx, userID)
}

// Logout deletes the session; a missing session is not an error.
func (uc *UseCase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return uc.sessions.Delete(ctx, sessionID)
}

// SessionTTL exposes the configured session lifetime for cookie expiry.
func (uc *UseCase) SessionTTL() time.Duration {
	return uc.sessionTTL
}
