package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/** --------------------ENTITIES-------------------- */
const (
	FriendRequestPending  = "pending"
	FriendRequestAccepted = "accepted"
	FriendRequestRejected = "rejected"
)

// FriendRequest moves through pending -> accepted|rejected exactly
// once. Sender and receiver are immutable after creation.
type FriendRequest struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Sender    primitive.ObjectID `bson:"sender" json:"sender"`
	Receiver  primitive.ObjectID `bson:"receiver" json:"receiver"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"createdAt"`
}

/** -------------------- DTOs -------------------- */
// Request
type SendFriendRequestRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
}

type ResolveFriendRequestRequest struct {
	Status string `json:"status" binding:"required"`
}

// Response
type RequestParty struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type FriendRequestView struct {
	ID        string       `json:"id"`
	Sender    RequestParty `json:"sender"`
	Receiver  RequestParty `json:"receiver"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

type FriendRequestList struct {
	Sent     []FriendRequestView `json:"sent"`
	Received []FriendRequestView `json:"received"`
}

type SendFriendRequestResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

type ResolveFriendRequestResponse struct {
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}
