package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

/** --------------------ENTITIES-------------------- */
// User is a registered account. Friends holds the ids of users on the
// other side of an accepted friend request; both sides carry the entry.
type User struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Username  string               `bson:"username" json:"username"`
	Email     string               `bson:"email" json:"email"`
	Password  string               `bson:"password" json:"-"`
	FullName  string               `bson:"full_name" json:"fullName"`
	Friends   []primitive.ObjectID `bson:"friends" json:"friends"`
	CreatedAt time.Time            `bson:"created_at" json:"createdAt"`
}

// IsFriend reports whether id is in the user's friend set.
func (u *User) IsFriend(id primitive.ObjectID) bool {
	for _, friendID := range u.Friends {
		if friendID == id {
			return true
		}
	}
	return false
}

/** -------------------- DTOs -------------------- */
// Request
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"fullName" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Response
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:       u.ID.Hex(),
		Username: u.Username,
		Email:    u.Email,
		FullName: u.FullName,
	}
}
