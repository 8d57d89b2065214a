package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

func newTestUser(repo *mockUserRepository, username string) *models.User {
	user := &models.User{
		Username:  username,
		Email:     username + "@example.com",
		FullName:  username,
		Friends:   []primitive.ObjectID{},
		CreatedAt: time.Now().UTC(),
	}
	_ = repo.Create(context.Background(), user)
	return user
}

func newFriendServiceFixture() (*FriendService, *mockUserRepository, *mockFriendRequestRepository) {
	users := newMockUserRepository()
	requests := newMockFriendRequestRepository()
	return NewFriendService(users, requests, nil), users, requests
}

func TestSendRequestCreatesPending(t *testing.T) {
	svc, users, requests := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	assert.Equal(t, models.FriendRequestPending, request.Status)
	assert.Equal(t, alice.ID, request.Sender)
	assert.Equal(t, bob.ID, request.Receiver)
	assert.False(t, request.ID.IsZero())
	assert.Len(t, requests.requests, 1)
}

func TestSendRequestToSelf(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")

	_, err := svc.SendRequest(context.Background(), alice.ID.Hex(), alice.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestSendRequestMalformedID(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")

	_, err := svc.SendRequest(context.Background(), alice.ID.Hex(), "not-an-id")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestSendRequestUnknownReceiver(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")

	_, err := svc.SendRequest(context.Background(), alice.ID.Hex(), primitive.NewObjectID().Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestSendRequestAlreadyFriends(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")
	require.NoError(t, users.AddFriend(context.Background(), alice.ID, bob.ID))
	require.NoError(t, users.AddFriend(context.Background(), bob.ID, alice.ID))

	_, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.CodeOf(err))
}

func TestSendRequestDuplicateBlocks(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	_, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	// Same direction.
	_, err = svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.CodeOf(err))

	// Reverse direction.
	_, err = svc.SendRequest(context.Background(), bob.ID.Hex(), alice.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.CodeOf(err))
}

func TestSendRequestBlockedByRejectedHistory(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)
	_, err = svc.ResolveRequest(context.Background(), request.ID.Hex(), bob.ID.Hex(), models.FriendRequestRejected)
	require.NoError(t, err)

	// The terminal record still blocks a new request.
	_, err = svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.CodeOf(err))
}

func TestResolveRequestAccept(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	resolved, err := svc.ResolveRequest(context.Background(), request.ID.Hex(), bob.ID.Hex(), models.FriendRequestAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestAccepted, resolved.Status)

	// Both friend sets gain the other party.
	aliceAfter, err := users.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	bobAfter, err := users.FindByID(context.Background(), bob.ID)
	require.NoError(t, err)
	assert.True(t, aliceAfter.IsFriend(bob.ID))
	assert.True(t, bobAfter.IsFriend(alice.ID))
}

func TestResolveRequestReject(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	resolved, err := svc.ResolveRequest(context.Background(), request.ID.Hex(), bob.ID.Hex(), models.FriendRequestRejected)
	require.NoError(t, err)
	assert.Equal(t, models.FriendRequestRejected, resolved.Status)

	aliceAfter, err := users.FindByID(context.Background(), alice.ID)
	require.NoError(t, err)
	assert.False(t, aliceAfter.IsFriend(bob.ID))
}

func TestResolveRequestOnlyReceiverCanResolve(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	// The sender cannot resolve their own request.
	_, err = svc.ResolveRequest(context.Background(), request.ID.Hex(), alice.ID.Hex(), models.FriendRequestAccepted)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestResolveRequestTwice(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	_, err = svc.ResolveRequest(context.Background(), request.ID.Hex(), bob.ID.Hex(), models.FriendRequestAccepted)
	require.NoError(t, err)

	// Terminal requests are invisible to the pending lookup.
	_, err = svc.ResolveRequest(context.Background(), request.ID.Hex(), bob.ID.Hex(), models.FriendRequestAccepted)
	require.Error(t, err)
	assert.Equal(t, apperr.NotFound, apperr.CodeOf(err))
}

func TestResolveRequestInvalidDecision(t *testing.T) {
	svc, users, _ := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")

	request, err := svc.SendRequest(context.Background(), alice.ID.Hex(), bob.ID.Hex())
	require.NoError(t, err)

	_, err = svc.ResolveRequest(context.Background(), request.ID.Hex(), bob.ID.Hex(), "maybe")
	require.Error(t, err)
	assert.Equal(t, apperr.InvalidArgument, apperr.CodeOf(err))
}

func TestListRequestsPartitionsAndEnriches(t *testing.T) {
	svc, users, requests := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")
	carol := newTestUser(users, "carol")

	now := time.Now().UTC()
	older := &models.FriendRequest{
		Sender:    alice.ID,
		Receiver:  bob.ID,
		Status:    models.FriendRequestPending,
		CreatedAt: now.Add(-time.Hour),
	}
	newer := &models.FriendRequest{
		Sender:    carol.ID,
		Receiver:  alice.ID,
		Status:    models.FriendRequestPending,
		CreatedAt: now,
	}
	require.NoError(t, requests.Create(context.Background(), older))
	require.NoError(t, requests.Create(context.Background(), newer))

	list, err := svc.ListRequests(context.Background(), alice.ID.Hex())
	require.NoError(t, err)

	require.Len(t, list.Sent, 1)
	require.Len(t, list.Received, 1)
	assert.Equal(t, "bob", list.Sent[0].Receiver.Username)
	assert.Equal(t, "bob@example.com", list.Sent[0].Receiver.Email)
	assert.Equal(t, "carol", list.Received[0].Sender.Username)
	assert.Equal(t, alice.ID.Hex(), list.Received[0].Receiver.ID)
}

func TestListRequestsNewestFirst(t *testing.T) {
	svc, users, requests := newFriendServiceFixture()
	alice := newTestUser(users, "alice")
	bob := newTestUser(users, "bob")
	carol := newTestUser(users, "carol")

	now := time.Now().UTC()
	first := &models.FriendRequest{
		Sender:    bob.ID,
		Receiver:  alice.ID,
		Status:    models.FriendRequestPending,
		CreatedAt: now.Add(-time.Minute),
	}
	second := &models.FriendRequest{
		Sender:    carol.ID,
		Receiver:  alice.ID,
		Status:    models.FriendRequestPending,
		CreatedAt: now,
	}
	require.NoError(t, requests.Create(context.Background(), first))
	require.NoError(t, requests.Create(context.Background(), second))

	list, err := svc.ListRequests(context.Background(), alice.ID.Hex())
	require.NoError(t, err)

	require.Len(t, list.Received, 2)
	assert.Equal(t, "carol", list.Received[0].Sender.Username)
	assert.Equal(t, "bob", list.Received[1].Sender.Username)
}
