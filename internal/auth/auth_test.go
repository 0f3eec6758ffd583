package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"coverage-api-backend/internal/config"
	apperrors "coverage-api-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// TokenStoreTestSuite tests the static token table
type TokenStoreTestSuite struct {
	suite.Suite
	store *TokenStore
}

func (suite *TokenStoreTestSuite) SetupTest() {
	store, err := NewTokenStore(&config.Config{
		APIToken:    "secret-token",
		APIUsername: "appuser",
	})
	suite.Require().NoError(err)
	suite.store = store
}

func (suite *TokenStoreTestSuite) TestNewTokenStoreWithoutSecret() {
	store, err := NewTokenStore(&config.Config{})

	suite.Error(err)
	suite.Nil(store)
	suite.True(apperrors.IsConfiguration(err))
}

func (suite *TokenStoreTestSuite) TestNewTokenStoreDefaultUsername() {
	store, err := NewTokenStore(&config.Config{APIToken: "secret-token"})
	suite.Require().NoError(err)

	username, err := store.Verify("secret-token")
	suite.NoError(err)
	suite.Equal("appuser", username)
}

func (suite *TokenStoreTestSuite) TestVerify() {
	username, err := suite.store.Verify("secret-token")

	suite.NoError(err)
	suite.Equal("appuser", username)
}

func (suite *TokenStoreTestSuite) TestVerifyUnknownToken() {
	username, err := suite.store.Verify("wrong-token")

	suite.Error(err)
	suite.Empty(username)
	suite.True(apperrors.IsAuthentication(err))
}

func (suite *TokenStoreTestSuite) TestVerifyEmptyToken() {
	username, err := suite.store.Verify("")

	suite.Error(err)
	suite.Empty(username)
	suite.True(apperrors.IsAuthentication(err))
}

func TestTokenStoreTestSuite(t *testing.T) {
	suite.Run(t, new(TokenStoreTestSuite))
}

// TokenMiddlewareTestSuite tests the API_TOKEN gate in front of a handler
type TokenMiddlewareTestSuite struct {
	suite.Suite
	router        *gin.Engine
	handlerCalled bool
	seenUsername  string
}

func (suite *TokenMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	store, err := NewTokenStore(&config.Config{
		APIToken:    "secret-token",
		APIUsername: "appuser",
	})
	suite.Require().NoError(err)

	suite.handlerCalled = false
	suite.seenUsername = ""

	middleware := NewTokenMiddleware(store)
	suite.router = gin.New()
	suite.router.GET("/protected", middleware.RequireToken(), func(c *gin.Context) {
		suite.handlerCalled = true
		suite.seenUsername = c.GetString("username")
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
}

func (suite *TokenMiddlewareTestSuite) TestValidToken() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "secret-token")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.True(suite.T(), suite.handlerCalled)
	assert.Equal(suite.T(), "appuser", suite.seenUsername)
}

func (suite *TokenMiddlewareTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "API token is required")
	assert.False(suite.T(), suite.handlerCalled)
}

func (suite *TokenMiddlewareTestSuite) TestUnknownToken() {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, "wrong-token")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid API token")
	assert.False(suite.T(), suite.handlerCalled)
}

func TestTokenMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(TokenMiddlewareTestSuite))
}
