package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type AppointmentHandler struct {
	log                *logger.Logger
	appointmentService services.AppointmentService
}

func NewAppointmentHandler(log *logger.Logger, appointmentService services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{log: log.With("handler", "AppointmentHandler"), appointmentService: appointmentService}
}

// List returns all appointments, or a single day's when ?date=YYYY-MM-DD
// is given.
func (ah *AppointmentHandler) List(c *gin.Context) {
	userID := currentUserID(c)
	day := c.Query("date")
	var (
		appointments []*types.Appointment
		err          error
	)
	if day != "" {
		appointments, err = ah.appointmentService.ListAppointmentsByDate(c.Request.Context(), userID, day)
	} else {
		appointments, err = ah.appointmentService.ListAppointments(c.Request.Context(), userID)
	}
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (ah *AppointmentHandler) Create(c *gin.Context) {
	var appointment types.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		respondBadBody(c)
		return
	}
	created, err := ah.appointmentService.CreateAppointment(c.Request.Context(), currentUserID(c), &appointment)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ah *AppointmentHandler) Update(c *gin.Context) {
	appointmentID, ok := pathID(c)
	if !ok {
		return
	}
	var input services.AppointmentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	updated, err := ah.appointmentService.UpdateAppointment(c.Request.Context(), appointmentID, currentUserID(c), &input)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ah *AppointmentHandler) Delete(c *gin.Context) {
	appointmentID, ok := pathID(c)
	if !ok {
		return
	}
	if err := ah.appointmentService.DeleteAppointment(c.Request.Context(), appointmentID, currentUserID(c)); err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}
