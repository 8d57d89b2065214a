package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pkjaknap/social-media-API/internal/models"
)

type PostRepository struct {
	collection *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{collection: db.Collection("posts")}
}

func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	result, err := r.collection.InsertOne(ctx, post)
	if err != nil {
		return err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		post.ID = id
	}
	return nil
}

// AppendComment pushes the comment onto the post's embedded comments
// array and returns the updated post. mongo.ErrNoDocuments when the
// post does not exist.
func (r *PostRepository) AppendComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error) {
	update := bson.M{"$push": bson.M{"comments": comment}}

	var post models.Post
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&post)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// FindVisibleToFriends returns posts authored by any of friendIDs or
// carrying at least one comment by any of them. The $or match yields
// each post once, newest first. created_at is stored at millisecond
// precision, so _id (monotonic per insertion) breaks the ties.
func (r *PostRepository) FindVisibleToFriends(ctx context.Context, friendIDs []primitive.ObjectID) ([]models.Post, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"author": bson.M{"$in": friendIDs}},
			{"comments.author": bson.M{"$in": friendIDs}},
		},
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{
			{Key: "created_at", Value: -1},
			{Key: "_id", Value: 1},
		}),
	)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
