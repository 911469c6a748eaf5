package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"social-im/internal/model"
	"social-im/pkg/websocket"
)

type mockUserStore struct{ mock.Mock }

func (m *mockUserStore) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserStore) GetByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserStore) GetByAccount(ctx context.Context, account string) (*model.User, error) {
	args := m.Called(ctx, account)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserStore) ExistsConflict(ctx context.Context, username, email, phone string) (bool, error) {
	args := m.Called(ctx, username, email, phone)
	return args.Bool(0), args.Error(1)
}

type mockMessageStore struct{ mock.Mock }

func (m *mockMessageStore) Create(ctx context.Context, message *model.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockMessageStore) GetPrivateMessages(ctx context.Context, userID, peerID uint, limit, offset int) ([]*model.Message, error) {
	args := m.Called(ctx, userID, peerID, limit, offset)
	list, _ := args.Get(0).([]*model.Message)
	return list, args.Error(1)
}

func (m *mockMessageStore) MarkConversationAsRead(ctx context.Context, userID, peerID uint) (int64, error) {
	args := m.Called(ctx, userID, peerID)
	return args.Get(0).(int64), args.Error(1)
}

type mockConversationStore struct{ mock.Mock }

func (m *mockConversationStore) Touch(ctx context.Context, ownerID, peerID uint, sessionType int, preview string, at time.Time, unreadDelta int64) error {
	return m.Called(ctx, ownerID, peerID, sessionType, preview, at, unreadDelta).Error(0)
}

func (m *mockConversationStore) List(ctx context.Context, ownerID uint, sessionType *int, limit, offset int) ([]*model.Conversation, int64, error) {
	args := m.Called(ctx, ownerID, sessionType, limit, offset)
	list, _ := args.Get(0).([]*model.Conversation)
	return list, args.Get(1).(int64), args.Error(2)
}

func (m *mockConversationStore) ResetUnread(ctx context.Context, ownerID, peerID uint) error {
	return m.Called(ctx, ownerID, peerID).Error(0)
}

type mockFriendStore struct{ mock.Mock }

func (m *mockFriendStore) Create(ctx context.Context, f *model.Friendship) error {
	return m.Called(ctx, f).Error(0)
}

func (m *mockFriendStore) GetByID(ctx context.Context, id uint) (*model.Friendship, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*model.Friendship)
	return f, args.Error(1)
}

func (m *mockFriendStore) GetByPair(ctx context.Context, userID, friendID uint) (*model.Friendship, error) {
	args := m.Called(ctx, userID, friendID)
	f, _ := args.Get(0).(*model.Friendship)
	return f, args.Error(1)
}

func (m *mockFriendStore) ListByUser(ctx context.Context, userID uint, status int) ([]*model.Friendship, error) {
	args := m.Called(ctx, userID, status)
	list, _ := args.Get(0).([]*model.Friendship)
	return list, args.Error(1)
}

func (m *mockFriendStore) ListIncoming(ctx context.Context, userID uint) ([]*model.Friendship, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*model.Friendship)
	return list, args.Error(1)
}

func (m *mockFriendStore) Accept(ctx context.Context, request *model.Friendship) error {
	return m.Called(ctx, request).Error(0)
}

func (m *mockFriendStore) DeletePair(ctx context.Context, userID, friendID uint) (int64, error) {
	args := m.Called(ctx, userID, friendID)
	return args.Get(0).(int64), args.Error(1)
}

type mockMomentStore struct{ mock.Mock }

func (m *mockMomentStore) CreateMoment(ctx context.Context, moment *model.Moment) error {
	return m.Called(ctx, moment).Error(0)
}

func (m *mockMomentStore) GetMoment(ctx context.Context, id string) (*model.Moment, error) {
	args := m.Called(ctx, id)
	mo, _ := args.Get(0).(*model.Moment)
	return mo, args.Error(1)
}

func (m *mockMomentStore) CreateComment(ctx context.Context, c *model.Comment) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockMomentStore) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*model.Comment)
	return c, args.Error(1)
}

func (m *mockMomentStore) ListComments(ctx context.Context, momentID string) ([]*model.Comment, error) {
	args := m.Called(ctx, momentID)
	list, _ := args.Get(0).([]*model.Comment)
	return list, args.Error(1)
}

func (m *mockMomentStore) UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockTokenIssuer struct{ mock.Mock }

func (m *mockTokenIssuer) GenerateToken(userID uint, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Notify(userID uint, event websocket.Event) bool {
	return m.Called(userID, event).Bool(0)
}
