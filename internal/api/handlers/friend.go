package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkjaknap/social-media-API/internal/api/middleware"
	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/internal/services"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// SendRequest godoc
// @Summary Send a friend request
// @Description Send a friend request to another user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.SendFriendRequestRequest true "Receiver user id"
// @Success 201 {object} models.SendFriendRequestResponse "Friend request sent"
// @Failure 400 {object} models.ErrorResponse "Invalid id, self-request, duplicate request or already friends"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /friends/request [post]
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var req models.SendFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "Invalid input data")
		return
	}

	request, err := h.friendService.SendRequest(c.Request.Context(), middleware.GetUserID(c), req.ReceiverID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, models.SendFriendRequestResponse{
		Message:   "Friend request sent",
		RequestID: request.ID.Hex(),
	})
}

// ResolveRequest godoc
// @Summary Accept or reject a friend request
// @Description Resolve a pending friend request addressed to the authenticated user
// @Tags friends
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Friend request id"
// @Param request body models.ResolveFriendRequestRequest true "Decision: accepted or rejected"
// @Success 200 {object} models.ResolveFriendRequestResponse "Friend request resolved"
// @Failure 400 {object} models.ErrorResponse "Invalid id or decision"
// @Failure 404 {object} models.ErrorResponse "Request not found or already processed"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /friends/request/{requestId} [put]
func (h *FriendHandler) ResolveRequest(c *gin.Context) {
	var req models.ResolveFriendRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "Invalid input data")
		return
	}

	request, err := h.friendService.ResolveRequest(c.Request.Context(),
		c.Param("requestId"), middleware.GetUserID(c), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ResolveFriendRequestResponse{
		Message:   fmt.Sprintf("Friend request %s", request.Status),
		RequestID: request.ID.Hex(),
	})
}

// ListRequests godoc
// @Summary List pending friend requests
// @Description Pending requests sent by and addressed to the authenticated user, newest first
// @Tags friends
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.FriendRequestList "Pending requests partitioned into sent and received"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /friends/requests [get]
func (h *FriendHandler) ListRequests(c *gin.Context) {
	list, err := h.friendService.ListRequests(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}
