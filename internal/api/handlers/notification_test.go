package handlers_test

import (
	"net/http"
	"testing"

	"taskask-backend/internal/api/handlers"
	"taskask-backend/internal/database/models"
	"taskask-backend/internal/service"
	"taskask-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	repo    *testutils.FakeNotificationRepo
	handler *handlers.NotificationHandler
	user    *models.User
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.repo = testutils.NewFakeNotificationRepo()
	suite.handler = handlers.NewNotificationHandler(service.NewNotificationService(suite.repo))

	suite.user = &models.User{
		FullName: "Evan Employee",
		Email:    "evan@example.com",
		Role:     models.RoleEmployee,
		IsActive: true,
	}
	suite.user.ID = uuid.New()
}

func (suite *NotificationHandlerTestSuite) router(user *models.User) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()

	notifications := httpSuite.Router.Group("/api/notifications", actAs(user))
	{
		notifications.GET("", suite.handler.GetMyNotifications)
		notifications.GET("/unread-count", suite.handler.GetUnreadCount)
		notifications.POST("/mark-read", suite.handler.MarkAllRead)
	}
	return httpSuite
}

func (suite *NotificationHandlerTestSuite) seed(read bool) {
	suite.Require().NoError(suite.repo.Create(&models.Notification{
		UserID:  suite.user.ID,
		Message: "seeded",
		Type:    models.NotificationTaskAssigned,
		IsRead:  read,
	}))
}

// TestGetMyNotifications tests the listing for the authenticated user
func (suite *NotificationHandlerTestSuite) TestGetMyNotifications() {
	suite.seed(false)
	suite.seed(true)

	httpSuite := suite.router(suite.user)
	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/notifications", nil)

	var notifications []service.NotificationResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &notifications)
	suite.Len(notifications, 2)
}

// TestGetUnreadCount tests the badge count endpoint
func (suite *NotificationHandlerTestSuite) TestGetUnreadCount() {
	suite.seed(false)
	suite.seed(false)
	suite.seed(true)

	httpSuite := suite.router(suite.user)
	recorder := httpSuite.MakeRequest(http.MethodGet, "/api/notifications/unread-count", nil)

	var count service.UnreadCountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &count)
	suite.Equal(int64(2), count.UnreadCount)
}

// TestMarkAllRead tests the bulk read flip
func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.seed(false)
	suite.seed(false)

	httpSuite := suite.router(suite.user)
	recorder := httpSuite.MakeRequest(http.MethodPost, "/api/notifications/mark-read", nil)
	suite.Equal(http.StatusNoContent, recorder.Code)

	recorder = httpSuite.MakeRequest(http.MethodGet, "/api/notifications/unread-count", nil)
	var count service.UnreadCountResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &count)
	suite.Equal(int64(0), count.UnreadCount)
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
