package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pkjaknap/social-media-API/internal/models"
)

type FriendRequestRepository struct {
	collection *mongo.Collection
}

func NewFriendRequestRepository(db *mongo.Database) *FriendRequestRepository {
	return &FriendRequestRepository{collection: db.Collection("friend_requests")}
}

func (r *FriendRequestRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	result, err := r.collection.InsertOne(ctx, request)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		request.ID = id
	}
	return nil
}

// ExistsBetween reports whether any request links the two users, in
// either direction and regardless of status.
func (r *FriendRequestRepository) ExistsBetween(ctx context.Context, a, b primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"$or": []bson.M{
			{"sender": a, "receiver": b},
			{"sender": b, "receiver": a},
		},
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ResolvePending flips the request to status if it is still pending and
// receiver matches. A terminal or foreign request never matches, so the
// caller sees mongo.ErrNoDocuments rather than the record.
func (r *FriendRequestRepository) ResolvePending(ctx context.Context, id, receiver primitive.ObjectID, status string) (*models.FriendRequest, error) {
	filter := bson.M{
		"_id":      id,
		"receiver": receiver,
		"status":   models.FriendRequestPending,
	}
	update := bson.M{"$set": bson.M{"status": status}}

	var request models.FriendRequest
	err := r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *FriendRequestRepository) ListPendingByUser(ctx context.Context, userID primitive.ObjectID) ([]models.FriendRequest, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"sender": userID},
			{"receiver": userID},
		},
		"status": models.FriendRequestPending,
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var requests []models.FriendRequest
	if err := cursor.All(ctx, &requests); err != nil {
		return nil, err
	}
	return requests, nil
}
