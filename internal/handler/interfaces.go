package handler

import (
	"context"

	"social-im/internal/dto"
	"social-im/internal/model"
)

type UserService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*model.User, string, error)
	Login(ctx context.Context, req dto.LoginRequest) (*model.User, string, error)
	Profile(ctx context.Context, userID uint) (*model.User, error)
}

type MessageService interface {
	SendMessage(ctx context.Context, senderID uint, req dto.SendMessageRequest) (*model.Message, error)
	History(ctx context.Context, userID, peerID uint, q dto.HistoryQuery) ([]*model.Message, error)
	MarkRead(ctx context.Context, userID, peerID uint) (int64, error)
}

type ConversationService interface {
	List(ctx context.Context, userID uint, q dto.ConversationQuery) (*dto.ConversationPage, error)
}

type FriendService interface {
	SendRequest(ctx context.Context, userID uint, req dto.FriendRequestCreate) (*model.Friendship, error)
	Accept(ctx context.Context, userID, requestID uint) (*model.Friendship, error)
	Remove(ctx context.Context, userID, friendID uint) error
	List(ctx context.Context, userID uint, q dto.FriendListQuery) ([]dto.FriendView, error)
	Incoming(ctx context.Context, userID uint) ([]dto.FriendView, error)
}

type MomentService interface {
	CreateMoment(ctx context.Context, userID uint, req dto.MomentRequest) (*model.Moment, error)
	AddComment(ctx context.Context, userID uint, momentID string, req dto.CommentRequest) (*model.Comment, error)
	ListComments(ctx context.Context, momentID string) ([]*model.Comment, error)
	DeleteComment(ctx context.Context, userID uint, commentID string) error
}
