package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkjaknap/social-media-API/internal/api/middleware"
	"github.com/pkjaknap/social-media-API/internal/services"
)

type FeedHandler struct {
	feedService *services.FeedService
}

func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// GetFeed godoc
// @Summary Get the activity feed
// @Description Posts authored or commented on by the authenticated user's friends, newest first
// @Tags feed
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FeedResponse "Annotated feed posts"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /feed [get]
func (h *FeedHandler) GetFeed(c *gin.Context) {
	feed, err := h.feedService.GetFeed(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, feed)
}
