package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AuthServiceTestSuite struct {
	suite.Suite
	authService *AuthService
	ctx         context.Context
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.authService = NewAuthService(state_repo.NewMemStateRepo(), "admin", "admin123")
	suite.ctx = context.Background()
}

func (suite *AuthServiceTestSuite) TestLoginSuccess() {
	auth, err := suite.authService.Login(suite.ctx, testSessionID, "admin", "admin123")
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), auth.Authenticated)
	assert.Equal(suite.T(), "admin", auth.Username)
	assert.Equal(suite.T(), "admin", auth.Role)

	// 登入狀態要寫進session
	session, err := suite.authService.Session(suite.ctx, testSessionID)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), session.Authenticated)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	_, err := suite.authService.Login(suite.ctx, testSessionID, "admin", "wrongpass")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)

	session, err := suite.authService.Session(suite.ctx, testSessionID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), session.Authenticated)
}

func (suite *AuthServiceTestSuite) TestLoginWrongUsername() {
	_, err := suite.authService.Login(suite.ctx, testSessionID, "root", "admin123")
	assert.ErrorIs(suite.T(), err, ErrInvalidCredentials)
}

func (suite *AuthServiceTestSuite) TestLogoutClearsState() {
	_, err := suite.authService.Login(suite.ctx, testSessionID, "admin", "admin123")
	assert.NoError(suite.T(), err)

	assert.NoError(suite.T(), suite.authService.Logout(suite.ctx, testSessionID))

	session, err := suite.authService.Session(suite.ctx, testSessionID)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), session.Authenticated)
	assert.Empty(suite.T(), session.Username)
}

func (suite *AuthServiceTestSuite) TestLogoutWithoutLoginIsNoop() {
	assert.NoError(suite.T(), suite.authService.Logout(suite.ctx, testSessionID))
}
