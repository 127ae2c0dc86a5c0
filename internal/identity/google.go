package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/todoer/backend/domain"
)

const (
	googleUserinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

	// exchangeTimeout bounds the code exchange plus the userinfo fetch.
	exchangeTimeout = 10 * time.Second
)

// GoogleConfig carries the OAuth client registration for Google sign-in.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleProvider implements Provider using Google's OAuth 2.0 endpoints.
type GoogleProvider struct {
	oauth       *oauth2.Config
	userinfoURL string
}

// NewGoogle builds a Google-backed identity provider.
func NewGoogle(cfg GoogleConfig) *GoogleProvider {
	return &GoogleProvider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userinfoURL: googleUserinfoURL,
	}
}

func (p *GoogleProvider) Name() string {
	return "google"
}

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.oauth.AuthCodeURL(state)
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*Claims, error) {
	ctx, cancel := context.WithTimeout(ctx, exchangeTimeout)
	defer cancel()

	token, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "authorization code exchange failed", err)
	}

	claims, err := p.fetchUserinfo(ctx, p.oauth.Client(ctx, token))
	if err != nil {
		return nil, domain.WrapError(domain.ErrCodeUnauthorized, "userinfo fetch failed", err)
	}
	return claims, nil
}

func (p *GoogleProvider) fetchUserinfo(ctx context.Context, client *http.Client) (*Claims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userinfoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo endpoint returned %d", resp.StatusCode)
	}

	var payload struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}
	if payload.Sub == "" {
		return nil, fmt.Errorf("userinfo response missing subject")
	}

	return &Claims{
		Subject: payload.Sub,
		Email:   payload.Email,
		Name:    payload.Name,
	}, nil
}
