package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type NotificationHandler struct {
	log                 *logger.Logger
	notificationService services.NotificationService
}

func NewNotificationHandler(log *logger.Logger, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		log:                 log.With("handler", "NotificationHandler"),
		notificationService: notificationService,
	}
}

func (nh *NotificationHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	notifications, err := nh.notificationService.ListNotifications(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

func (nh *NotificationHandler) Unread(c *gin.Context) {
	notifications, err := nh.notificationService.UnreadNotifications(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Create returns 200 with a suppression marker when the user's settings
// disable the notification type, 201 when a row was stored.
func (nh *NotificationHandler) Create(c *gin.Context) {
	var notification types.Notification
	if err := c.ShouldBindJSON(&notification); err != nil {
		respondBadBody(c)
		return
	}
	created, stored, err := nh.notificationService.CreateNotification(c.Request.Context(), currentUserID(c), &notification)
	if err != nil {
		respondError(c, nh.log, err)
		return
	}
	if !stored {
		c.JSON(http.StatusOK, gin.H{"suppressed": true})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (nh *NotificationHandler) MarkRead(c *gin.Context) {
	notificationID, ok := pathID(c)
	if !ok {
		return
	}
	if err := nh.notificationService.MarkRead(c.Request.Context(), notificationID, currentUserID(c)); err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "marked as read"})
}

func (nh *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := nh.notificationService.MarkAllRead(c.Request.Context(), currentUserID(c)); err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "all marked as read"})
}

func (nh *NotificationHandler) Delete(c *gin.Context) {
	notificationID, ok := pathID(c)
	if !ok {
		return
	}
	if err := nh.notificationService.DeleteNotification(c.Request.Context(), notificationID, currentUserID(c)); err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (nh *NotificationHandler) GetSettings(c *gin.Context) {
	settings, err := nh.notificationService.GetSettings(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (nh *NotificationHandler) UpdateSettings(c *gin.Context) {
	var input services.NotificationSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	settings, err := nh.notificationService.UpdateSettings(c.Request.Context(), currentUserID(c), &input)
	if err != nil {
		respondError(c, nh.log, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}
