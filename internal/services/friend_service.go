package services

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkjaknap/social-media-API/internal/models"
	"github.com/pkjaknap/social-media-API/pkg/apperr"
)

type FriendService struct {
	users    UserRepository
	requests FriendRequestRepository
	events   *EventService
}

func NewFriendService(users UserRepository, requests FriendRequestRepository, events *EventService) *FriendService {
	return &FriendService{
		users:    users,
		requests: requests,
		events:   events,
	}
}

// SendRequest creates a pending request from sender to receiver. Any
// existing request between the pair blocks, in either direction and in
// any status, as does an existing friendship.
func (s *FriendService) SendRequest(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error) {
	sender, err := parseObjectID(senderID, "Invalid user ID")
	if err != nil {
		return nil, err
	}
	receiver, err := parseObjectID(receiverID, "Invalid user ID")
	if err != nil {
		return nil, err
	}

	if sender == receiver {
		return nil, apperr.New(apperr.InvalidArgument, "Cannot send friend request to yourself")
	}

	senderUser, err := s.findUser(ctx, sender)
	if err != nil {
		return nil, err
	}
	if _, err := s.findUser(ctx, receiver); err != nil {
		return nil, err
	}

	if senderUser.IsFriend(receiver) {
		return nil, apperr.New(apperr.Conflict, "Users are already friends")
	}

	exists, err := s.requests.ExistsBetween(ctx, sender, receiver)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.New(apperr.Conflict, "Friend request already exists")
	}

	request := &models.FriendRequest{
		Sender:    sender,
		Receiver:  receiver,
		Status:    models.FriendRequestPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.requests.Create(ctx, request); err != nil {
		return nil, err
	}

	s.events.FriendRequestSent(sender.Hex(), request.ID.Hex())
	return request, nil
}

// ResolveRequest transitions a pending request to accepted or rejected.
// Only the receiver can resolve, and only once: a terminal request no
// longer matches the pending lookup and surfaces as NotFound.
func (s *FriendService) ResolveRequest(ctx context.Context, requestID, actingUserID, status string) (*models.FriendRequest, error) {
	id, err := parseObjectID(requestID, "Invalid request ID")
	if err != nil {
		return nil, err
	}
	actingUser, err := parseObjectID(actingUserID, "Invalid user ID")
	if err != nil {
		return nil, err
	}

	if status != models.FriendRequestAccepted && status != models.FriendRequestRejected {
		return nil, apperr.New(apperr.InvalidArgument, `Invalid status. Must be "accepted" or "rejected"`)
	}

	request, err := s.requests.ResolvePending(ctx, id, actingUser, status)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "Friend request not found or already processed")
		}
		return nil, err
	}

	if status == models.FriendRequestAccepted {
		// Two separate updates; $addToSet keeps each side idempotent so
		// a retry after a partial failure converges.
		if err := s.users.AddFriend(ctx, request.Sender, request.Receiver); err != nil {
			return nil, err
		}
		if err := s.users.AddFriend(ctx, request.Receiver, request.Sender); err != nil {
			return nil, err
		}
	}

	s.events.FriendRequestResolved(actingUser.Hex(), request.ID.Hex(), status)
	return request, nil
}

// ListRequests returns the user's pending requests, newest first,
// partitioned into sent and received and enriched with both parties'
// username and email.
func (s *FriendService) ListRequests(ctx context.Context, userID string) (*models.FriendRequestList, error) {
	id, err := parseObjectID(userID, "Invalid user ID")
	if err != nil {
		return nil, err
	}

	requests, err := s.requests.ListPendingByUser(ctx, id)
	if err != nil {
		return nil, err
	}

	parties, err := s.loadParties(ctx, requests)
	if err != nil {
		return nil, err
	}

	list := &models.FriendRequestList{
		Sent:     []models.FriendRequestView{},
		Received: []models.FriendRequestView{},
	}
	for _, request := range requests {
		view := models.FriendRequestView{
			ID:        request.ID.Hex(),
			Sender:    parties[request.Sender],
			Receiver:  parties[request.Receiver],
			Status:    request.Status,
			CreatedAt: request.CreatedAt,
		}
		if request.Sender == id {
			list.Sent = append(list.Sent, view)
		} else {
			list.Received = append(list.Received, view)
		}
	}
	return list, nil
}

func (s *FriendService) loadParties(ctx context.Context, requests []models.FriendRequest) (map[primitive.ObjectID]models.RequestParty, error) {
	seen := make(map[primitive.ObjectID]bool)
	var ids []primitive.ObjectID
	for _, request := range requests {
		for _, id := range []primitive.ObjectID{request.Sender, request.Receiver} {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	users, err := s.users.FindManyByID(ctx, ids)
	if err != nil {
		return nil, err
	}

	parties := make(map[primitive.ObjectID]models.RequestParty, len(users))
	for _, user := range users {
		parties[user.ID] = models.RequestParty{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Email:    user.Email,
		}
	}
	return parties, nil
}

func (s *FriendService) findUser(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.New(apperr.NotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}

func parseObjectID(raw, message string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.New(apperr.InvalidArgument, message)
	}
	return id, nil
}
