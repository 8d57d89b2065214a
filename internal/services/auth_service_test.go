package services

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

const testSecret = "test-secret"

func newAuthFixture() (*AuthService, *mockUserRepository) {
	users := newMockUserRepository()
	return NewAuthService(users, nil, testSecret, time.Hour), users
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, users := newAuthFixture()

	resp, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.ID)

	stored, err := users.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("s3cret")))
	assert.NotNil(t, stored.Friends)
	assert.Empty(t, stored.Friends)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newAuthFixture()

	registered, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice Doe",
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, resp.User.ID)
	assert.Equal(t, "alice", resp.User.Username)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, registered.ID, claims["sub"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret",
		FullName: "Alice Doe",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.CodeOf(err))
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.Unauthenticated, apperr.CodeOf(err))
}
