package handlers

import (
	"net/http"

	"taskask-backend/internal/auth"
	"taskask-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for the notification log
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
	}
}

// GetMyNotifications handles GET /notifications
// @Summary List the caller's notifications
// @Description Returns the authenticated user's notifications, newest first
// @Tags notifications
// @Produce json
// @Success 200 {array} service.NotificationResponse "Notifications"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	notifications, err := h.notificationService.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount handles GET /notifications/unread-count
// @Summary Count the caller's unread notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} service.UnreadCountResponse "Unread count"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications/unread-count [get]
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	count, err := h.notificationService.UnreadCount(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, count)
}

// MarkAllRead handles POST /notifications/mark-read
// @Summary Mark all of the caller's notifications as read
// @Tags notifications
// @Produce json
// @Success 204 "All notifications marked read"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /notifications/mark-read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.notificationService.MarkAllRead(userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
