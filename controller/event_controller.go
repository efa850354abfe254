package controller

import (
	"net/http"
	"reflect"
	"time"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/auth"
	"github.com/campus-events/backend/repository"
	"github.com/campus-events/backend/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/schema"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var queryDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	// Dates arrive as RFC 3339 or plain YYYY-MM-DD.
	d.RegisterConverter(time.Time{}, func(value string) reflect.Value {
		for _, layout := range []string{time.RFC3339, "2006-01-02"} {
			if t, err := time.Parse(layout, value); err == nil {
				return reflect.ValueOf(t)
			}
		}
		return reflect.Value{}
	})
	return d
}()

type EventController struct {
	EventService        *service.EventService
	RegistrationService *service.RegistrationService
}

func (h *EventController) List(c *gin.Context) {
	events, err := h.EventService.ListPublished(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventController) Search(c *gin.Context) {
	events, err := h.EventService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventController) Filter(c *gin.Context) {
	var filter repository.EventFilter
	if err := queryDecoder.Decode(&filter, c.Request.URL.Query()); err != nil {
		respondError(c, apperr.Validation("invalid filter parameters"))
		return
	}

	events, err := h.EventService.Filter(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

func (h *EventController) Get(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid event id"))
		return
	}

	event, err := h.EventService.FindOneByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *EventController) Create(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	var input service.CreateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	event, err := h.EventService.Create(c.Request.Context(), principal, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"event": event})
}

func (h *EventController) Update(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid event id"))
		return
	}

	var input service.UpdateEventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, apperr.Validation("invalid request body"))
		return
	}

	event, err := h.EventService.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *EventController) Publish(c *gin.Context) {
	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid event id"))
		return
	}

	event, err := h.EventService.Publish(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}

func (h *EventController) Register(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	id, err := bson.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, apperr.Validation("invalid event id"))
		return
	}

	registration, err := h.RegistrationService.Register(c.Request.Context(), principal, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"registration": registration})
}

func (h *EventController) MyRegistrations(c *gin.Context) {
	principal, _ := auth.GetPrincipal(c)

	registrations, err := h.RegistrationService.ListMine(c.Request.Context(), principal)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registrations": registrations})
}
