package service

import (
	"context"
	"encoding/json"

	"social-im/internal/dto"
	"social-im/pkg/logger"
	"social-im/pkg/redis"

	"go.uber.org/zap"
)

// ConversationService 会话列表
type ConversationService struct {
	conversations ConversationStore
}

func NewConversationService(conversations ConversationStore) *ConversationService {
	return &ConversationService{conversations: conversations}
}

// List 分页查询会话列表，优先读缓存；未读数以Redis中的实时计数为准
func (s *ConversationService) List(ctx context.Context, userID uint, q dto.ConversationQuery) (*dto.ConversationPage, error) {
	field := redis.ConversationQueryField(q.Page, q.Limit, q.Type)
	if data, err := redis.GetCachedConversations(userID, field); err == nil {
		var page dto.ConversationPage
		if json.Unmarshal(data, &page) == nil {
			return &page, nil
		}
	}

	list, total, err := s.conversations.List(ctx, userID, q.Type, q.Limit, q.Offset())
	if err != nil {
		return nil, err
	}

	unread, _ := redis.GetUnreadCounts(userID)
	page := &dto.ConversationPage{
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
		Items: make([]dto.ConversationView, 0, len(list)),
	}
	for _, c := range list {
		view := dto.NewConversationView(c)
		if n, ok := unread[c.PeerID]; ok {
			view.UnreadCount = n
		}
		page.Items = append(page.Items, view)
	}

	if data, err := json.Marshal(page); err == nil {
		if err := redis.CacheConversations(userID, field, data); err != nil {
			logger.Debug("会话列表未缓存", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
	return page, nil
}
