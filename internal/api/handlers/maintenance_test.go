package handlers_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"coverage-api-backend/internal/api/handlers"
	"coverage-api-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MaintenanceHandlerTestSuite defines the test suite for MaintenanceHandler
type MaintenanceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCoverageServiceInterface
	handler     *handlers.MaintenanceHandler
	router      *gin.Engine
}

func (suite *MaintenanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCoverageServiceInterface(suite.ctrl)
	suite.handler = handlers.NewMaintenanceHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/database/recreate", suite.handler.RecreateDatabase)
}

func (suite *MaintenanceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MaintenanceHandlerTestSuite) TestRecreateDatabase_Confirmed() {
	suite.mockService.EXPECT().RecreateDatabase().Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/database/recreate?confirmation=true", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "database recreated")
}

func (suite *MaintenanceHandlerTestSuite) TestRecreateDatabase_ConfirmationMissing() {
	// No service expectation: nothing destructive may run

	req := httptest.NewRequest(http.MethodPost, "/database/recreate", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)

	var got map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "confirmation is missing", got["error"])

	details, ok := got["details"].(map[string]interface{})
	assert.True(suite.T(), ok)
	assert.Equal(suite.T(), "check the API for how to confirm", details["error"])
}

func (suite *MaintenanceHandlerTestSuite) TestRecreateDatabase_ConfirmationFalse() {
	req := httptest.NewRequest(http.MethodPost, "/database/recreate?confirmation=false", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "confirmation is missing")
}

func (suite *MaintenanceHandlerTestSuite) TestRecreateDatabase_ConfirmationGarbage() {
	req := httptest.NewRequest(http.MethodPost, "/database/recreate?confirmation=yes-please", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "confirmation is missing")
}

func (suite *MaintenanceHandlerTestSuite) TestRecreateDatabase_ServiceError() {
	suite.mockService.EXPECT().RecreateDatabase().Return(errors.New("db failure"))

	req := httptest.NewRequest(http.MethodPost, "/database/recreate?confirmation=true", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "Failed to recreate database")
}

func TestMaintenanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(MaintenanceHandlerTestSuite))
}
