package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

const bcryptCost = 10

type AuthService struct {
	users     UserRepository
	events    *EventService
	jwtSecret string
	jwtExpire time.Duration
}

func NewAuthService(users UserRepository, events *EventService, secret string, expire time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		events:    events,
		jwtSecret: secret,
		jwtExpire: expire,
	}
}

// Register creates a user with a bcrypt-hashed credential and an empty
// friend set.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.UserResponse, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		FullName:  req.FullName,
		Friends:   []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.events.UserRegistered(user.ID.Hex())
	return user.ToResponse(), nil
}

// Login verifies the credential and issues an HS256 token with the user
// id as subject. Missing user and bad password are indistinguishable to
// the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.Unauthenticated, "Invalid credentials")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.New(apperr.Unauthenticated, "Invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.ID.Hex(),
		"exp": time.Now().Add(s.jwtExpire).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{
		Token: tokenString,
		User:  *user.ToResponse(),
	}, nil
}
