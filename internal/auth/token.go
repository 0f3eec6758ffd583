package auth

import (
	"coverage-api-backend/internal/config"
	apperrors "coverage-api-backend/internal/errors"
)

// TokenStore holds the static token-to-username mapping built once at
// startup. It is read-only after construction; there is no session state,
// expiry or rotation.
type TokenStore struct {
	tokens map[string]string
}

// NewTokenStore builds the token table from the configured secret.
func NewTokenStore(cfg *config.Config) (*TokenStore, error) {
	if cfg.APIToken == "" {
		return nil, apperrors.ErrAPITokenNotSet
	}

	username := cfg.APIUsername
	if username == "" {
		username = "appuser"
	}

	return &TokenStore{
		tokens: map[string]string{
			cfg.APIToken: username,
		},
	}, nil
}

// Verify looks up the presented token and returns the associated display
// username, or an authentication error when the token is unknown.
func (s *TokenStore) Verify(token string) (string, error) {
	if token == "" {
		return "", apperrors.ErrTokenMissing
	}
	username, ok := s.tokens[token]
	if !ok {
		return "", apperrors.ErrTokenInvalid
	}
	return username, nil
}
