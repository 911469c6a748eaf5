package service

import (
	"context"
	"errors"
	"fmt"

	"social-im/internal/dto"
	"social-im/internal/model"
	"social-im/pkg/websocket"
)

// FriendService 好友关系
type FriendService struct {
	friends  FriendStore
	users    UserStore
	notifier Notifier
}

func NewFriendService(friends FriendStore, users UserStore, notifier Notifier) *FriendService {
	return &FriendService{friends: friends, users: users, notifier: notifier}
}

// SendRequest 发送好友申请，任一方向已存在关系时返回 ErrDuplicate
func (s *FriendService) SendRequest(ctx context.Context, userID uint, req dto.FriendRequestCreate) (*model.Friendship, error) {
	if userID == req.FriendID {
		return nil, ErrInvalidTarget
	}
	if _, err := s.users.GetByID(ctx, req.FriendID); err != nil {
		return nil, err
	}

	for _, pair := range [][2]uint{{userID, req.FriendID}, {req.FriendID, userID}} {
		_, err := s.friends.GetByPair(ctx, pair[0], pair[1])
		if err == nil {
			return nil, fmt.Errorf("%w: 好友关系或申请已存在", ErrDuplicate)
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}

	f := &model.Friendship{
		UserID:   userID,
		FriendID: req.FriendID,
		Status:   model.FriendStatusPending,
		Message:  req.Message,
	}
	if err := s.friends.Create(ctx, f); err != nil {
		return nil, err
	}

	s.notifier.Notify(req.FriendID, websocket.Event{
		Type: websocket.EventFriendApply,
		From: userID,
		Data: map[string]any{"request_id": f.ID, "message": f.Message},
	})
	return f, nil
}

// Accept 只有申请的接收方可以同意
func (s *FriendService) Accept(ctx context.Context, userID, requestID uint) (*model.Friendship, error) {
	f, err := s.friends.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if f.FriendID != userID {
		return nil, ErrPermissionDenied
	}
	if f.Status != model.FriendStatusPending {
		return nil, fmt.Errorf("%w: 申请已处理", ErrDuplicate)
	}
	if err := s.friends.Accept(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// Remove 解除好友关系
func (s *FriendService) Remove(ctx context.Context, userID, friendID uint) error {
	n, err := s.friends.DeletePair(ctx, userID, friendID)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// List 好友列表，未指定状态时返回已同意的好友
func (s *FriendService) List(ctx context.Context, userID uint, q dto.FriendListQuery) ([]dto.FriendView, error) {
	status := model.FriendStatusAccepted
	if q.Status != nil {
		status = *q.Status
	}
	list, err := s.friends.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, err
	}
	views := make([]dto.FriendView, 0, len(list))
	for _, f := range list {
		views = append(views, dto.NewFriendView(f))
	}
	return views, nil
}

// Incoming 收到的待处理申请
func (s *FriendService) Incoming(ctx context.Context, userID uint) ([]dto.FriendView, error) {
	list, err := s.friends.ListIncoming(ctx, userID)
	if err != nil {
		return nil, err
	}
	views := make([]dto.FriendView, 0, len(list))
	for _, f := range list {
		views = append(views, dto.NewIncomingRequestView(f))
	}
	return views, nil
}
