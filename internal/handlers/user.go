package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
)

type UserHandler struct {
	log         *logger.Logger
	userService services.UserService
}

func NewUserHandler(log *logger.Logger, userService services.UserService) *UserHandler {
	return &UserHandler{log: log.With("handler", "UserHandler"), userService: userService}
}

func (uh *UserHandler) GetMe(c *gin.Context) {
	user, err := uh.userService.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uh *UserHandler) UpdateSetup(c *gin.Context) {
	var input services.UserSetupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadBody(c)
		return
	}
	user, err := uh.userService.UpdateSetup(c.Request.Context(), currentUserID(c), &input)
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uh *UserHandler) CompleteSetup(c *gin.Context) {
	user, err := uh.userService.CompleteSetup(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (uh *UserHandler) GetPatients(c *gin.Context) {
	patients, err := uh.userService.GetPatients(c.Request.Context())
	if err != nil {
		respondError(c, uh.log, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}
