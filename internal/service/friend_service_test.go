package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"social-im/internal/dto"
	"social-im/internal/model"
	"social-im/pkg/websocket"
)

func newFriendFixture() (*FriendService, *mockFriendStore, *mockUserStore, *mockNotifier) {
	friends := &mockFriendStore{}
	users := &mockUserStore{}
	notifier := &mockNotifier{}
	return NewFriendService(friends, users, notifier), friends, users, notifier
}

func TestFriendService_SendRequest(t *testing.T) {
	svc, friends, users, notifier := newFriendFixture()
	users.On("GetByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
	friends.On("GetByPair", mock.Anything, uint(1), uint(2)).Return(nil, ErrNotFound)
	friends.On("GetByPair", mock.Anything, uint(2), uint(1)).Return(nil, ErrNotFound)
	friends.On("Create", mock.Anything, mock.AnythingOfType("*model.Friendship")).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Friendship).ID = 8 }).
		Return(nil)
	notifier.On("Notify", uint(2), mock.MatchedBy(func(e websocket.Event) bool {
		return e.Type == websocket.EventFriendApply && e.From == 1
	})).Return(true)

	f, err := svc.SendRequest(context.Background(), 1, dto.FriendRequestCreate{FriendID: 2, Message: "hi"})
	require.NoError(t, err)
	assert.Equal(t, model.FriendStatusPending, f.Status)
	notifier.AssertExpectations(t)
}

func TestFriendService_SendRequestRejects(t *testing.T) {
	svc, friends, users, _ := newFriendFixture()

	_, err := svc.SendRequest(context.Background(), 1, dto.FriendRequestCreate{FriendID: 1})
	assert.ErrorIs(t, err, ErrInvalidTarget)

	users.On("GetByID", mock.Anything, uint(2)).Return(&model.User{ID: 2}, nil)
	friends.On("GetByPair", mock.Anything, uint(1), uint(2)).Return(nil, ErrNotFound)
	friends.On("GetByPair", mock.Anything, uint(2), uint(1)).Return(&model.Friendship{ID: 3}, nil)

	_, err = svc.SendRequest(context.Background(), 1, dto.FriendRequestCreate{FriendID: 2})
	assert.ErrorIs(t, err, ErrDuplicate)
	friends.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFriendService_Accept(t *testing.T) {
	svc, friends, _, _ := newFriendFixture()
	pending := &model.Friendship{ID: 5, UserID: 1, FriendID: 2, Status: model.FriendStatusPending}
	done := &model.Friendship{ID: 6, UserID: 3, FriendID: 2, Status: model.FriendStatusAccepted}
	friends.On("GetByID", mock.Anything, uint(5)).Return(pending, nil)
	friends.On("GetByID", mock.Anything, uint(6)).Return(done, nil)
	friends.On("Accept", mock.Anything, pending).Return(nil)

	_, err := svc.Accept(context.Background(), 1, 5)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.Accept(context.Background(), 2, 6)
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = svc.Accept(context.Background(), 2, 5)
	require.NoError(t, err)
	friends.AssertCalled(t, "Accept", mock.Anything, pending)
}

func TestFriendService_Remove(t *testing.T) {
	svc, friends, _, _ := newFriendFixture()
	friends.On("DeletePair", mock.Anything, uint(1), uint(2)).Return(int64(2), nil)
	friends.On("DeletePair", mock.Anything, uint(1), uint(9)).Return(int64(0), nil)

	assert.NoError(t, svc.Remove(context.Background(), 1, 2))
	assert.ErrorIs(t, svc.Remove(context.Background(), 1, 9), ErrNotFound)
}

func TestFriendService_ListDefaultsToAccepted(t *testing.T) {
	svc, friends, _, _ := newFriendFixture()
	friends.On("ListByUser", mock.Anything, uint(1), model.FriendStatusAccepted).Return([]*model.Friendship{
		{ID: 4, UserID: 1, FriendID: 2, Status: model.FriendStatusAccepted, Friend: model.User{ID: 2, Username: "bob", Avatar: "a.png"}},
	}, nil)

	views, err := svc.List(context.Background(), 1, dto.FriendListQuery{})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "2", views[0].UserID)
	require.NotNil(t, views[0].AvatarURL)
	assert.Equal(t, "a.png", *views[0].AvatarURL)
}

func TestFriendService_Incoming(t *testing.T) {
	svc, friends, _, _ := newFriendFixture()
	friends.On("ListIncoming", mock.Anything, uint(2)).Return([]*model.Friendship{
		{ID: 4, UserID: 1, FriendID: 2, User: model.User{ID: 1, Username: "alice"}},
	}, nil)

	views, err := svc.Incoming(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "1", views[0].UserID)
	assert.Equal(t, "alice", views[0].Username)
	assert.Equal(t, model.FriendStatusPending, views[0].Status)
}
