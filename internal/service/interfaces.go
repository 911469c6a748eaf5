package service

import (
	"context"
	"time"

	"social-im/internal/model"
	"social-im/pkg/websocket"
)

// UserStore 用户存储
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByAccount(ctx context.Context, account string) (*model.User, error)
	ExistsConflict(ctx context.Context, username, email, phone string) (bool, error)
}

// MessageStore 消息存储
type MessageStore interface {
	Create(ctx context.Context, message *model.Message) error
	GetPrivateMessages(ctx context.Context, userID, peerID uint, limit, offset int) ([]*model.Message, error)
	MarkConversationAsRead(ctx context.Context, userID, peerID uint) (int64, error)
}

// ConversationStore 会话列表存储
type ConversationStore interface {
	Touch(ctx context.Context, ownerID, peerID uint, sessionType int, preview string, at time.Time, unreadDelta int64) error
	List(ctx context.Context, ownerID uint, sessionType *int, limit, offset int) ([]*model.Conversation, int64, error)
	ResetUnread(ctx context.Context, ownerID, peerID uint) error
}

// FriendStore 好友关系存储
type FriendStore interface {
	Create(ctx context.Context, f *model.Friendship) error
	GetByID(ctx context.Context, id uint) (*model.Friendship, error)
	GetByPair(ctx context.Context, userID, friendID uint) (*model.Friendship, error)
	ListByUser(ctx context.Context, userID uint, status int) ([]*model.Friendship, error)
	ListIncoming(ctx context.Context, userID uint) ([]*model.Friendship, error)
	Accept(ctx context.Context, request *model.Friendship) error
	DeletePair(ctx context.Context, userID, friendID uint) (int64, error)
}

// MomentStore 动态与评论存储
type MomentStore interface {
	CreateMoment(ctx context.Context, m *model.Moment) error
	GetMoment(ctx context.Context, id string) (*model.Moment, error)
	CreateComment(ctx context.Context, c *model.Comment) error
	GetComment(ctx context.Context, id string) (*model.Comment, error)
	ListComments(ctx context.Context, momentID string) ([]*model.Comment, error)
	UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) error
}

// TokenIssuer 签发访问令牌
type TokenIssuer interface {
	GenerateToken(userID uint, username string) (string, error)
}

// Notifier 实时推送
type Notifier interface {
	Notify(userID uint, event websocket.Event) bool
}
