package controller

import (
	"net/http"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/auth"
	"github.com/campus-events/backend/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ReservationController struct {
	ReservationService *service.ReservationService
}

func (h *ReservationController) ListCourts(c *gin.Context) {
	courts, err := h.ReservationService.ListCourts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courts": courts})
}

func (h *ReservationController) CreateCourt(c *gin.Context) {
	var input service.CreateCourtInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	court, err := h.ReservationService.CreateCourt(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"court": court})
}

func (h *ReservationController) Reserve(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	courtID, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid court id"))
		return
	}

	var input service.ReserveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	reservation, err := h.ReservationService.Reserve(c.Request.Context(), principal, courtID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"reservation": reservation})
}

func (h *ReservationController) MyReservations(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	reservations, err := h.ReservationService.ListMine(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}
