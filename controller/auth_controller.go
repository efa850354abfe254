package controller

import (
	"net/http"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func (h *AuthController) Register(c *gin.Context) {
	var input service.RegisterUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	user, token, err := h.AuthService.RegisterUser(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *AuthController) Login(c *gin.Context) {
	var creds service.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	user, token, err := h.AuthService.LoginUser(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *AuthController) RegisterVendor(c *gin.Context) {
	var input service.RegisterVendorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	vendor, token, err := h.AuthService.RegisterVendor(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"vendor": vendor, "token": token})
}

func (h *AuthController) LoginVendor(c *gin.Context) {
	var creds service.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	vendor, token, err := h.AuthService.LoginVendor(c.Request.Context(), creds)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"vendor": vendor, "token": token})
}
