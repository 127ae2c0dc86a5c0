// Package identity abstracts the external identity provider so the rest of
// the application only ever sees "assertion in, subject out". Alternate or
// test-double providers plug in without touching the item service.
package identity

import "context"

// Claims is the verified identity information extracted from a provider
// assertion. Subject is the provider's stable identifier for the user.
type Claims struct {
	Subject string
	Email   string
	Name    string
}

// Provider exchanges provider-issued assertion data for verified claims.
type Provider interface {
	// Name identifies the provider ("google"); stored next to the subject
	// so identifiers from different providers never collide.
	Name() string

	// AuthCodeURL builds the URL the browser is redirected to for sign-in.
	// The state value round-trips through the provider unchanged.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for verified claims. Any
	// invalid, expired, or tampered code must fail; no partial result.
	Exchange(ctx context.Context, code string) (*Claims, error)
}
