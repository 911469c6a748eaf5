package repository

import (
	"context"

	"social-im/internal/model"

	"gorm.io/gorm"
)

// MessageRepository 消息数据仓储
type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

// Create 创建消息
func (r *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	return WrapGormError(r.db.WithContext(ctx).Create(message).Error)
}

// GetPrivateMessages 获取两个用户之间的私聊消息（双向），按时间倒序
func (r *MessageRepository) GetPrivateMessages(ctx context.Context, userID, peerID uint, limit, offset int) ([]*model.Message, error) {
	var messages []*model.Message
	err := r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Where("session_type = ?", model.SessionTypePrivate).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&messages).Error
	return messages, WrapGormError(err)
}

// MarkConversationAsRead 将对方发给自己的未读消息标记为已读，返回更新条数
func (r *MessageRepository) MarkConversationAsRead(ctx context.Context, userID, peerID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", userID, peerID, false).
		Updates(map[string]any{"is_read": true, "status": "read"})
	return res.RowsAffected, WrapGormError(res.Error)
}
