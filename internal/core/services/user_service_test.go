package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/receivables_app/internal/apperrors"
	"github.com/SscSPs/receivables_app/internal/core/domain"
	portssvc "github.com/SscSPs/receivables_app/internal/core/ports/services"
	"github.com/SscSPs/receivables_app/internal/core/services"
	"github.com/SscSPs/receivables_app/internal/dto"
	"github.com/SscSPs/receivables_app/internal/platform/config"
	"github.com/SscSPs/receivables_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
	ctx      context.Context
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *UserServiceTestSuite) TestCreateUser_Success() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "admin@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", suite.ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "admin@example.com" && u.Role == domain.RoleAdmin && u.PasswordHash != "s3cret-pass"
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{
		Email:    " Admin@Example.com ",
		Password: "s3cret-pass",
		Role:     domain.RoleAdmin,
	})
	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash("s3cret-pass", user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_Duplicate() {
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "ops@example.com").Return(&domain.User{UserID: "u1"}, nil).Once()

	_, err := suite.service.CreateUser(suite.ctx, dto.CreateUserRequest{Email: "ops@example.com", Password: "password1", Role: domain.RoleUser})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser() {
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: "u1", Email: "ops@example.com", PasswordHash: hash, Role: domain.RoleUser}

	suite.mockRepo.On("FindUserByEmail", suite.ctx, "ops@example.com").Return(stored, nil)
	suite.mockRepo.On("FindUserByEmail", suite.ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound)

	user, err := suite.service.AuthenticateUser(suite.ctx, "OPS@example.com", "correct-horse")
	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)

	_, err = suite.service.AuthenticateUser(suite.ctx, "ops@example.com", "wrong")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)

	_, err = suite.service.AuthenticateUser(suite.ctx, "nobody@example.com", "whatever")
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestGetUserByID_NotFound() {
	suite.mockRepo.On("FindUserByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetUserByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestGenerateAccessToken_CarriesRole() {
	cfg := &config.Config{JWTSecret: "test-secret-key-that-is-long-enough", JWTExpiryDuration: time.Hour, JWTIssuer: "test"}
	tokenSvc := services.NewTokenService(cfg)

	token, expiresAt, err := tokenSvc.GenerateAccessToken(suite.ctx, &domain.User{UserID: "u1", Email: "a@b.c", Role: domain.RoleAdmin})
	suite.Require().NoError(err)
	suite.False(expiresAt.IsZero())

	claims, err := utils.ParseAndValidateJWT(token, cfg.JWTSecret)
	suite.Require().NoError(err)
	suite.True(claims.Identity().IsAdmin())
	suite.Equal("u1", claims.Subject)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
