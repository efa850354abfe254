package controller

import (
	"net/http"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/auth"
	"github.com/campus-events/backend/service"

	"github.com/gin-gonic/gin"
)

type VendorController struct {
	ApplicationService  *service.ApplicationService
	NotificationService *service.NotificationService
}

// SubmitApplication handles POST /vendor/events/:eventId/applications. The
// path id wins over any event reference in the body.
func (h *VendorController) SubmitApplication(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	var input service.SubmitApplicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}
	if eventID := c.Param("eventId"); eventID != "" {
		input.EventID = eventID
	}

	app, err := h.ApplicationService.Submit(c.Request.Context(), principal, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

func (h *VendorController) MyApplications(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	apps, err := h.ApplicationService.ListMine(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applications": apps})
}

// MyNotifications returns review-outcome notifications addressed to the
// calling vendor.
func (h *VendorController) MyNotifications(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	notifications, err := h.NotificationService.ListForPrincipal(c.Request.Context(), principal, false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}
