package service

import (
	"context"
	"unicode/utf8"

	"social-im/internal/dto"
	"social-im/internal/model"
	"social-im/pkg/logger"
	"social-im/pkg/redis"
	"social-im/pkg/websocket"

	"go.uber.org/zap"
)

// 会话列表中最后一条消息的预览长度
const previewRunes = 50

// MessageService 私聊消息
type MessageService struct {
	messages      MessageStore
	conversations ConversationStore
	users         UserStore
	notifier      Notifier
}

func NewMessageService(messages MessageStore, conversations ConversationStore, users UserStore, notifier Notifier) *MessageService {
	return &MessageService{
		messages:      messages,
		conversations: conversations,
		users:         users,
		notifier:      notifier,
	}
}

// SendMessage 保存消息，更新双方会话，并推送给接收者
func (s *MessageService) SendMessage(ctx context.Context, senderID uint, req dto.SendMessageRequest) (*model.Message, error) {
	if senderID == req.ReceiverID {
		return nil, ErrInvalidTarget
	}
	if _, err := s.users.GetByID(ctx, req.ReceiverID); err != nil {
		return nil, err
	}

	message := &model.Message{
		SessionType: model.SessionTypePrivate,
		SenderID:    senderID,
		ReceiverID:  req.ReceiverID,
		Content:     req.Content,
		MsgType:     "text",
		Status:      "sent",
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}

	preview := truncate(req.Content, previewRunes)
	at := message.CreatedAt
	if err := s.conversations.Touch(ctx, senderID, req.ReceiverID, model.SessionTypePrivate, preview, at, 0); err != nil {
		return nil, err
	}
	if err := s.conversations.Touch(ctx, req.ReceiverID, senderID, model.SessionTypePrivate, preview, at, 1); err != nil {
		return nil, err
	}

	if err := redis.IncrementUnread(req.ReceiverID, senderID); err != nil {
		logger.Debug("未读计数未写入Redis", zap.Error(err))
	}
	_ = redis.InvalidateConversations(senderID, req.ReceiverID)

	s.notifier.Notify(req.ReceiverID, websocket.Event{
		Type: websocket.EventChat,
		From: senderID,
		Data: dto.NewMessageView(message),
	})
	return message, nil
}

// History 与 peerID 的私聊历史，按时间倒序分页
func (s *MessageService) History(ctx context.Context, userID, peerID uint, q dto.HistoryQuery) ([]*model.Message, error) {
	if _, err := s.users.GetByID(ctx, peerID); err != nil {
		return nil, err
	}
	return s.messages.GetPrivateMessages(ctx, userID, peerID, q.PageSize, q.Offset())
}

// MarkRead 将与 peerID 的会话全部标记为已读，返回更新的消息数
func (s *MessageService) MarkRead(ctx context.Context, userID, peerID uint) (int64, error) {
	n, err := s.messages.MarkConversationAsRead(ctx, userID, peerID)
	if err != nil {
		return 0, err
	}
	if err := s.conversations.ResetUnread(ctx, userID, peerID); err != nil {
		return 0, err
	}
	_ = redis.ResetUnread(userID, peerID)
	_ = redis.InvalidateConversations(userID)
	return n, nil
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "…"
}
