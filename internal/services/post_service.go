package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

type PostService struct {
	posts  PostRepository
	events *EventService
}

func NewPostService(posts PostRepository, events *EventService) *PostService {
	return &PostService{posts: posts, events: events}
}

func (s *PostService) CreatePost(ctx context.Context, authorID, content string) (*models.Post, error) {
	author, err := parseObjectID(authorID, "Invalid user ID")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperr.New(apperr.InvalidArgument, "Post content is required")
	}

	post := &models.Post{
		Author:    author,
		Content:   content,
		Comments:  []models.Comment{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	s.events.PostCreated(author.Hex(), post.ID.Hex())
	return post, nil
}

func (s *PostService) AddComment(ctx context.Context, postID, authorID, content string) (*models.Post, error) {
	id, err := parseObjectID(postID, "Invalid post ID")
	if err != nil {
		return nil, err
	}
	author, err := parseObjectID(authorID, "Invalid user ID")
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, apperr.New(apperr.InvalidArgument, "Comment content is required")
	}

	comment := models.Comment{
		Author:    author,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	post, err := s.posts.AppendComment(ctx, id, comment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "Post not found")
		}
		return nil, err
	}

	s.events.PostCommented(author.Hex(), post.ID.Hex())
	return post, nil
}
