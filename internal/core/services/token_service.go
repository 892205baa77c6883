package services

import (
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/platform/config"
	"github.com/pipeyard/pipeyard_api/internal/utils"
)

// tokenService issues signed JWTs for authenticated admins.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new TokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the portssvc.TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateToken creates a new JWT for the given admin.
func (s *tokenService) GenerateToken(admin *domain.Admin) (string, error) {
	return utils.GenerateJWT(admin.AdminID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
}
