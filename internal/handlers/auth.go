package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/elevita-health/elevita-backend/internal/logger"
	"github.com/elevita-health/elevita-backend/internal/services"
	"github.com/elevita-health/elevita-backend/internal/types"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{log: log.With("handler", "AuthHandler"), authService: authService}
}

func (ah *AuthHandler) Register(c *gin.Context) {
	var req struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Password  string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	user := types.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  req.Password,
	}
	accessToken, refreshToken, err := ah.authService.RegisterUser(c.Request.Context(), &user)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	ah.setTokenCookies(c, accessToken, refreshToken)
	c.JSON(http.StatusCreated, ah.tokenResponse(accessToken, refreshToken))
}

func (ah *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c)
		return
	}
	accessToken, refreshToken, err := ah.authService.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	ah.setTokenCookies(c, accessToken, refreshToken)
	c.JSON(http.StatusOK, ah.tokenResponse(accessToken, refreshToken))
}

func (ah *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		if cookie, cErr := c.Cookie("refresh_token"); cErr == nil {
			req.RefreshToken = cookie
		}
	}
	accessToken, refreshToken, err := ah.authService.RefreshUser(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, ah.log, err)
		return
	}
	ah.setTokenCookies(c, accessToken, refreshToken)
	c.JSON(http.StatusOK, ah.tokenResponse(accessToken, refreshToken))
}

func (ah *AuthHandler) Logout(c *gin.Context) {
	if err := ah.authService.LogoutUser(c.Request.Context()); err != nil {
		respondError(c, ah.log, err)
		return
	}
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

func (ah *AuthHandler) tokenResponse(accessToken, refreshToken string) gin.H {
	return gin.H{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"expires_in":    int(ah.authService.AccessTTL().Seconds()),
	}
}

func (ah *AuthHandler) setTokenCookies(c *gin.Context, accessToken, refreshToken string) {
	c.SetCookie("access_token", accessToken, int(ah.authService.AccessTTL().Seconds()), "/", "", false, true)
	c.SetCookie("refresh_token", refreshToken, int(ah.authService.RefreshTTL().Seconds()), "/", "", false, true)
}
