package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// stateSigner issues and verifies the OAuth state parameter as a short-lived
// HS256 token, which lets the callback reject forged or replayed redirects
// without storing state server-side.
type stateSigner struct {
	secret []byte
	ttl    time.Duration
}

func newStateSigner(secret []byte, ttl time.Duration) *stateSigner {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &stateSigner{secret: secret, ttl: ttl}
}

func (s *stateSigner) Issue() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *stateSigner) Verify(state string) error {
	if state == "" {
		return fmt.Errorf("missing state")
	}
	token, err := jwt.ParseWithClaims(state, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return err
	}
	if !token.Valid {
		return fmt.Errorf("invalid state token")
	}
	return nil
}
