package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pkjaknap/social-media-API/internal/api/middleware"
	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/internal/services"
)

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// CreatePost godoc
// @Summary Create a post
// @Description Create a post authored by the authenticated user
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreatePostRequest true "Post content"
// @Success 201 {object} models.Post "Created post"
// @Failure 400 {object} models.ErrorResponse "Invalid input data"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /posts [post]
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "Invalid input data")
		return
	}

	post, err := h.postService.CreatePost(c.Request.Context(), middleware.GetUserID(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}

// AddComment godoc
// @Summary Comment on a post
// @Description Append a comment to an existing post
// @Tags posts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param postId path string true "Post id"
// @Param request body models.AddCommentRequest true "Comment content"
// @Success 201 {object} models.Post "Post including the new comment"
// @Failure 400 {object} models.ErrorResponse "Invalid input data"
// @Failure 404 {object} models.ErrorResponse "Post not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /posts/{postId}/comments [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	var req models.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c, "Invalid input data")
		return
	}

	post, err := h.postService.AddComment(c.Request.Context(),
		c.Param("postId"), middleware.GetUserID(c), req.Content)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, post)
}
