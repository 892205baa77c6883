package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/platform/config"
)

// googleOAuthService runs the Google sign-in flow for staff accounts.
type googleOAuthService struct {
	cfg          *config.Config
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new GoogleOAuthService.
func NewGoogleOAuthService(cfg *config.Config) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		cfg: cfg,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure googleOAuthService implements the portssvc.GoogleOAuthSvcFacade interface
var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// AuthCodeURL returns the Google consent page URL carrying the CSRF state.
func (s *googleOAuthService) AuthCodeURL(state string) string {
	return s.oauth2Config.AuthCodeURL(state)
}

// ExchangeCode trades the authorization code for tokens and validates the ID
// token Google returned, yielding the verified account email and name.
func (s *googleOAuthService) ExchangeCode(ctx context.Context, code string) (string, string, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return "", "", fmt.Errorf("failed to exchange authorization code: %w", err)
	}

	idTokenString, ok := token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		return "", "", fmt.Errorf("id_token missing from Google token response")
	}

	payload, err := idtoken.Validate(ctx, idTokenString, s.cfg.GoogleClientID)
	if err != nil {
		return "", "", fmt.Errorf("failed to validate Google ID token: %w", err)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return "", "", fmt.Errorf("email claim missing from Google ID token")
	}
	if verified, _ := payload.Claims["email_verified"].(bool); !verified {
		return "", "", fmt.Errorf("Google account email is not verified")
	}
	name, _ := payload.Claims["name"].(string)

	return email, name, nil
}
