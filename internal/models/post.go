package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/** --------------------ENTITIES-------------------- */
// Comment lives inside its post's comments array. It has no collection
// of its own and is only ever fetched with the parent post.
type Comment struct {
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Author    primitive.ObjectID `bson:"author" json:"author"`
	Content   string             `bson:"content" json:"content"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
// Request
type CreatePostRequest struct {
	Content string `json:"content" binding:"required"`
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// Response
type FeedAuthor struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type FeedComment struct {
	Author    FeedAuthor `json:"author"`
	Content   string     `json:"content"`
	CreatedAt time.Time  `json:"createdAt"`
}

// VisibleReason says why a post made it into the feed. Both flags can
// be true at once; the post still appears exactly once.
type VisibleReason struct {
	IsFriendPost     bool `json:"isFriendPost"`
	HasFriendComment bool `json:"hasFriendComment"`
}

type FeedPost struct {
	ID            string        `json:"id"`
	Author        FeedAuthor    `json:"author"`
	Content       string        `json:"content"`
	Comments      []FeedComment `json:"comments"`
	CreatedAt     time.Time     `json:"createdAt"`
	VisibleReason VisibleReason `json:"visibleReason"`
}

type FeedResponse struct {
	Posts []FeedPost `json:"posts"`
}
