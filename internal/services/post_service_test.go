package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

func newPostServiceFixture() (*PostService, *mockPostRepository) {
	posts := newMockPostRepository()
	return NewPostService(posts, nil), posts
}

func TestCreatePost(t *testing.T) {
	svc, _ := newPostServiceFixture()
	author := primitive.NewObjectID()

	post, err := svc.CreatePost(context.Background(), author.Hex(), "first post")
	require.NoError(t, err)

	assert.False(t, post.ID.IsZero())
	assert.Equal(t, author, post.Author)
	assert.Equal(t, "first post", post.Content)
	assert.NotNil(t, post.Comments)
	assert.Empty(t, post.Comments)
	assert.False(t, post.CreatedAt.IsZero())
}

func TestCreatePostEmptyContent(t *testing.T) {
	svc, _ := newPostServiceFixture()

	_, err := svc.CreatePost(context.Background(), primitive.NewObjectID().Hex(), "   ")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestCreatePostMalformedAuthor(t *testing.T) {
	svc, _ := newPostServiceFixture()

	_, err := svc.CreatePost(context.Background(), "bad-id", "content")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestAddCommentAppendsInOrder(t *testing.T) {
	svc, _ := newPostServiceFixture()
	author := primitive.NewObjectID()
	commenter := primitive.NewObjectID()

	post, err := svc.CreatePost(context.Background(), author.Hex(), "discuss")
	require.NoError(t, err)

	updated, err := svc.AddComment(context.Background(), post.ID.Hex(), commenter.Hex(), "one")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 1)

	updated, err = svc.AddComment(context.Background(), post.ID.Hex(), author.Hex(), "two")
	require.NoError(t, err)
	require.Len(t, updated.Comments, 2)

	assert.Equal(t, "one", updated.Comments[0].Content)
	assert.Equal(t, commenter, updated.Comments[0].Author)
	assert.Equal(t, "two", updated.Comments[1].Content)
	assert.Equal(t, author, updated.Comments[1].Author)
}

func TestAddCommentMissingPost(t *testing.T) {
	svc, _ := newPostServiceFixture()

	_, err := svc.AddComment(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestAddCommentMalformedPostID(t *testing.T) {
	svc, _ := newPostServiceFixture()

	_, err := svc.AddComment(context.Background(), "nope", primitive.NewObjectID().Hex(), "hello")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}
