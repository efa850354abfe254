package controller

import (
	"net/http"
	"strconv"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/auth"
	"github.com/campus-events/backend/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type AdminController struct {
	ApplicationService  *service.ApplicationService
	NotificationService *service.NotificationService
	OrganizationService *service.OrganizationService
}

type reviewRequest struct {
	Action service.ReviewAction `json:"action"`
	Notes  string               `json:"notes"`
}

func (h *AdminController) ReviewApplication(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid application id"))
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	app, err := h.ApplicationService.Review(c.Request.Context(), principal, id, req.Action, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

func (h *AdminController) ListApplications(c *gin.Context) {
	apps, err := h.ApplicationService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// ListNotifications serves the admin inbox for the caller's own role, unread
// first when ?unread=true.
func (h *AdminController) ListNotifications(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))

	notifications, err := h.NotificationService.ListForRole(c.Request.Context(), principal.Role, unreadOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

func (h *AdminController) MarkNotificationRead(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid notification id"))
		return
	}

	notification, err := h.NotificationService.MarkRead(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notification": notification})
}

func (h *AdminController) MarkAllNotificationsRead(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	count, err := h.NotificationService.MarkAllRead(c.Request.Context(), principal.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": count})
}

func (h *AdminController) CreateOrganization(c *gin.Context) {
	var input service.CreateOrganizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	org, err := h.OrganizationService.Create(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"organization": org})
}

func (h *AdminController) ListOrganizations(c *gin.Context) {
	orgs, err := h.OrganizationService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"organizations": orgs})
}
