package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/pipeyard/pipeyard_api/internal/apperrors"
	"github.com/pipeyard/pipeyard_api/internal/core/domain"
	portssvc "github.com/pipeyard/pipeyard_api/internal/core/ports/services"
	"github.com/pipeyard/pipeyard_api/internal/core/services"
	"github.com/pipeyard/pipeyard_api/internal/utils"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockAdminRepo *MockAdminRepository
	service       portssvc.AdminSvcFacade

	activeAdmin domain.Admin
	password    string
}

func (suite *AdminServiceTestSuite) SetupTest() {
	suite.mockAdminRepo = new(MockAdminRepository)
	suite.service = services.NewAdminService(suite.mockAdminRepo)

	suite.password = "correct horse battery staple"
	hash, err := utils.HashPassword(suite.password)
	suite.Require().NoError(err)

	suite.activeAdmin = domain.Admin{
		AdminID:      uuid.NewString(),
		Email:        "ops@pipeyard.example.com",
		Name:         "Yard Ops",
		PasswordHash: hash,
		IsActive:     true,
	}
}

func (suite *AdminServiceTestSuite) TestAuthorizeAdminAction_Active() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByID", ctx, suite.activeAdmin.AdminID).Return(&suite.activeAdmin, nil).Once()

	err := suite.service.AuthorizeAdminAction(ctx, suite.activeAdmin.AdminID)

	suite.NoError(err)
}

func (suite *AdminServiceTestSuite) TestAuthorizeAdminAction_Unknown() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockAdminRepo.On("FindAdminByID", ctx, unknownID).Return(nil, apperrors.ErrNotFound).Once()

	err := suite.service.AuthorizeAdminAction(ctx, unknownID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AdminServiceTestSuite) TestAuthorizeAdminAction_Inactive() {
	ctx := context.Background()
	inactive := suite.activeAdmin
	inactive.IsActive = false

	suite.mockAdminRepo.On("FindAdminByID", ctx, inactive.AdminID).Return(&inactive, nil).Once()

	err := suite.service.AuthorizeAdminAction(ctx, inactive.AdminID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AdminServiceTestSuite) TestAuthenticateByPassword_Success() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, suite.activeAdmin.Email).Return(&suite.activeAdmin, nil).Once()

	admin, err := suite.service.AuthenticateByPassword(ctx, suite.activeAdmin.Email, suite.password)

	suite.Require().NoError(err)
	suite.Require().NotNil(admin)
	suite.Equal(suite.activeAdmin.AdminID, admin.AdminID)
}

func (suite *AdminServiceTestSuite) TestAuthenticateByPassword_WrongPassword() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, suite.activeAdmin.Email).Return(&suite.activeAdmin, nil).Once()

	admin, err := suite.service.AuthenticateByPassword(ctx, suite.activeAdmin.Email, "not the password")

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AdminServiceTestSuite) TestAuthenticateByPassword_UnknownEmail() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, "nobody@pipeyard.example.com").Return(nil, apperrors.ErrNotFound).Once()

	admin, err := suite.service.AuthenticateByPassword(ctx, "nobody@pipeyard.example.com", suite.password)

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AdminServiceTestSuite) TestAuthenticateByPassword_NoHashOnRecord() {
	ctx := context.Background()
	googleOnly := suite.activeAdmin
	googleOnly.PasswordHash = ""

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, googleOnly.Email).Return(&googleOnly, nil).Once()

	admin, err := suite.service.AuthenticateByPassword(ctx, googleOnly.Email, suite.password)

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *AdminServiceTestSuite) TestAuthenticateByGoogle_Success() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, suite.activeAdmin.Email).Return(&suite.activeAdmin, nil).Once()

	admin, err := suite.service.AuthenticateByGoogle(ctx, suite.activeAdmin.Email)

	suite.Require().NoError(err)
	suite.Equal(suite.activeAdmin.AdminID, admin.AdminID)
}

func (suite *AdminServiceTestSuite) TestAuthenticateByGoogle_UnknownEmail() {
	ctx := context.Background()

	suite.mockAdminRepo.On("FindAdminByEmail", ctx, "stranger@gmail.com").Return(nil, apperrors.ErrNotFound).Once()

	admin, err := suite.service.AuthenticateByGoogle(ctx, "stranger@gmail.com")

	suite.Require().Error(err)
	suite.Nil(admin)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func TestAdminServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}
