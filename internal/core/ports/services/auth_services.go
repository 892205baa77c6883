package services

import (
	"context"

	"github.com/pipeyard/pipeyard_api/internal/core/domain"
)

// TokenSvcFacade issues bearer tokens for authenticated admins.
type TokenSvcFacade interface {
	GenerateToken(admin *domain.Admin) (string, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in flow for staff accounts.
type GoogleOAuthSvcFacade interface {
	// AuthCodeURL returns the Google consent page URL with the given CSRF state.
	AuthCodeURL(state string) string
	// ExchangeCode trades the authorization code for the verified account email.
	ExchangeCode(ctx context.Context, code string) (email string, name string, err error)
}
