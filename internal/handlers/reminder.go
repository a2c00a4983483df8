package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type ReminderHandler struct {
	log             *logger.Logger
	reminderService services.ReminderService
}

func NewReminderHandler(log *logger.Logger, reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{log: log.With("handler", "ReminderHandler"), reminderService: reminderService}
}

func (rh *ReminderHandler) List(c *gin.Context) {
	reminders, err := rh.reminderService.ListReminders(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusOK, reminders)
}

func (rh *ReminderHandler) Create(c *gin.Context) {
	var reminder types.Reminder
	if err := c.ShouldBindJSON(&reminder); err != nil {
		respondBadBody(c)
		return
	}
	created, err := rh.reminderService.CreateReminder(c.Request.Context(), currentUserID(c), &reminder)
	if err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (rh *ReminderHandler) Complete(c *gin.Context) {
	reminderID, ok := pathID(c)
	if !ok {
		return
	}
	if err := rh.reminderService.CompleteReminder(c.Request.Context(), reminderID, currentUserID(c)); err != nil {
		respondError(c, rh.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "reminder completed"})
}
