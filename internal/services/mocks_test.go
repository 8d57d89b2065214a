package services

import (
	"context"
	"sort"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pkjaknap/social-media-API/internal/models"
)

// In-memory repository fakes mirroring the mongodb package's observable
// behavior, including mongo.ErrNoDocuments on misses.

type mockUserRepository struct {
	users map[primitive.ObjectID]*models.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepository) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	found := *user
	found.Friends = append([]primitive.ObjectID(nil), user.Friends...)
	return &found, nil
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range m.users {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockUserRepository) FindManyByID(_ context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var out []models.User
	for _, id := range ids {
		if user, ok := m.users[id]; ok {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (m *mockUserRepository) AddFriend(_ context.Context, userID, friendID primitive.ObjectID) error {
	user, ok := m.users[userID]
	if !ok {
		// Mirrors an update matching zero documents: no error.
		return nil
	}
	for _, existing := range user.Friends {
		if existing == friendID {
			return nil
		}
	}
	user.Friends = append(user.Friends, friendID)
	return nil
}

type mockFriendRequestRepository struct {
	requests []*models.FriendRequest
}

func newMockFriendRequestRepository() *mockFriendRequestRepository {
	return &mockFriendRequestRepository{}
}

func (m *mockFriendRequestRepository) Create(_ context.Context, request *models.FriendRequest) error {
	if request.ID.IsZero() {
		request.ID = primitive.NewObjectID()
	}
	stored := *request
	m.requests = append(m.requests, &stored)
	return nil
}

func (m *mockFriendRequestRepository) ExistsBetween(_ context.Context, a, b primitive.ObjectID) (bool, error) {
	for _, request := range m.requests {
		if (request.Sender == a && request.Receiver == b) ||
			(request.Sender == b && request.Receiver == a) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockFriendRequestRepository) ResolvePending(_ context.Context, id, receiver primitive.ObjectID, status string) (*models.FriendRequest, error) {
	for _, request := range m.requests {
		if request.ID == id && request.Receiver == receiver && request.Status == models.FriendRequestPending {
			request.Status = status
			resolved := *request
			return &resolved, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockFriendRequestRepository) ListPendingByUser(_ context.Context, userID primitive.ObjectID) ([]models.FriendRequest, error) {
	var out []models.FriendRequest
	for _, request := range m.requests {
		if request.Status != models.FriendRequestPending {
			continue
		}
		if request.Sender == userID || request.Receiver == userID {
			out = append(out, *request)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type mockPostRepository struct {
	posts []*models.Post
}

func newMockPostRepository() *mockPostRepository {
	return &mockPostRepository{}
}

func (m *mockPostRepository) Create(_ context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	stored := *post
	stored.Comments = append([]models.Comment(nil), post.Comments...)
	m.posts = append(m.posts, &stored)
	return nil
}

func (m *mockPostRepository) AppendComment(_ context.Context, postID primitive.ObjectID, comment models.Comment) (*models.Post, error) {
	for _, post := range m.posts {
		if post.ID == postID {
			post.Comments = append(post.Comments, comment)
			updated := *post
			updated.Comments = append([]models.Comment(nil), post.Comments...)
			return &updated, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *mockPostRepository) FindVisibleToFriends(_ context.Context, friendIDs []primitive.ObjectID) ([]models.Post, error) {
	friendSet := make(map[primitive.ObjectID]bool, len(friendIDs))
	for _, id := range friendIDs {
		friendSet[id] = true
	}

	// Reverse storage order: a created_at sort leaves ties in whatever
	// order the server picks, so callers may not rely on cursor order.
	var out []models.Post
	for i := len(m.posts) - 1; i >= 0; i-- {
		post := m.posts[i]
		matches := friendSet[post.Author]
		if !matches {
			for _, comment := range post.Comments {
				if friendSet[comment.Author] {
					matches = true
					break
				}
			}
		}
		if matches {
			found := *post
			found.Comments = append([]models.Comment(nil), post.Comments...)
			out = append(out, found)
		}
	}
	return out, nil
}
