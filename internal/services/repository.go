package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pkjaknap/social-media-API/internal/models"
)

// Repository interfaces are declared here, on the consumer side; the
// mongodb package implements them. Lookups that miss return
// mongo.ErrNoDocuments, matching the driver contract.

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindManyByID(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
	AddFriend(ctx context.Context, userID, friendID primitive.ObjectID) error
}

type FriendRequestRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	ExistsBetween(ctx context.Context, a, b primitive.ObjectID) (bool, error)
	ResolvePending(ctx context.Context, id, receiver primitive.ObjectID, status string) (*models.FriendRequest, error)
	ListPendingByUser(ctx context.Context, userID primitive.ObjectID) ([]models.FriendRequest, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	AppendComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error)
	FindVisibleToFriends(ctx context.Context, friendIDs []primitive.ObjectID) ([]models.Post, error)
}
