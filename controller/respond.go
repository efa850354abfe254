package controller

import (
	"net/http"

	"github.com/campus-events/backend/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// respondError is the single boundary where service errors become HTTP
// responses. Internal errors keep their message server-side.
func respondError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
