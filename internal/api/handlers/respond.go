package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

// writeError maps a service error to its HTTP status. Unclassified
// errors get the generic body; the full error goes to the server log.
func writeError(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"request_id", c.GetString("request_id"),
			"error", err,
		)
	}
	c.JSON(status, models.ErrorResponse{
		Code:    status,
		Message: apperr.MessageOf(err),
	})
}

func writeBindError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
