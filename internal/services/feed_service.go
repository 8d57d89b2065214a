package services

import (
	"bytes"
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

type FeedService struct {
	users UserRepository
	posts PostRepository
}

func NewFeedService(users UserRepository, posts PostRepository) *FeedService {
	return &FeedService{users: users, posts: posts}
}

// GetFeed assembles the posts visible to userID: a friend authored the
// post, or a friend commented on it. Each matching post appears once,
// with its full comment list, annotated with why it is visible.
func (s *FeedService) GetFeed(ctx context.Context, userID string) (*models.FeedResponse, error) {
	id, err := parseObjectID(userID, "Invalid user ID")
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, err
	}

	posts, err := s.posts.FindVisibleToFriends(ctx, user.Friends)
	if err != nil {
		return nil, err
	}

	// Creation time descending. BSON datetimes carry millisecond
	// precision, so equal timestamps happen; _id increases with
	// insertion order and breaks the tie, independent of cursor order.
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return bytes.Compare(posts[i].ID[:], posts[j].ID[:]) < 0
	})

	usernames, err := s.loadUsernames(ctx, posts)
	if err != nil {
		return nil, err
	}

	friendSet := make(map[primitive.ObjectID]bool, len(user.Friends))
	for _, friendID := range user.Friends {
		friendSet[friendID] = true
	}

	feed := make([]models.FeedPost, 0, len(posts))
	for _, post := range posts {
		comments := make([]models.FeedComment, 0, len(post.Comments))
		hasFriendComment := false
		for _, comment := range post.Comments {
			if friendSet[comment.Author] {
				hasFriendComment = true
			}
			comments = append(comments, models.FeedComment{
				Author: models.FeedAuthor{
					ID:       comment.Author.Hex(),
					Username: usernames[comment.Author],
				},
				Content:   comment.Content,
				CreatedAt: comment.CreatedAt,
			})
		}

		feed = append(feed, models.FeedPost{
			ID: post.ID.Hex(),
			Author: models.FeedAuthor{
				ID:       post.Author.Hex(),
				Username: usernames[post.Author],
			},
			Content:   post.Content,
			Comments:  comments,
			CreatedAt: post.CreatedAt,
			VisibleReason: models.VisibleReason{
				IsFriendPost:     friendSet[post.Author],
				HasFriendComment: hasFriendComment,
			},
		})
	}

	return &models.FeedResponse{Posts: feed}, nil
}

func (s *FeedService) loadUsernames(ctx context.Context, posts []models.Post) (map[primitive.ObjectID]string, error) {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	add := func(id primitive.ObjectID) {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, post := range posts {
		add(post.Author)
		for _, comment := range post.Comments {
			add(comment.Author)
		}
	}

	users, err := s.users.FindManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	usernames := make(map[primitive.ObjectID]string, len(users))
	for _, user := range users {
		usernames[user.ID] = user.Username
	}
	return usernames, nil
}
