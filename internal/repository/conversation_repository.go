package repository

import (
	"context"
	"time"

	"social-im/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConversationRepository 会话列表仓储
type ConversationRepository struct {
	db *gorm.DB
}

func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Touch 写入或更新 owner 与 peer 的会话，unreadDelta 累加到未读数
func (r *ConversationRepository) Touch(ctx context.Context, ownerID, peerID uint, sessionType int, preview string, at time.Time, unreadDelta int64) error {
	conv := &model.Conversation{
		OwnerID:     ownerID,
		PeerID:      peerID,
		Type:        sessionType,
		LastMessage: preview,
		LastTime:    at,
		UnreadCount: unreadDelta,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "owner_id"}, {Name: "peer_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"last_message": preview,
			"last_time":    at,
			"unread_count": gorm.Expr("unread_count + ?", unreadDelta),
			"updated_at":   at,
		}),
	}).Create(conv).Error
	return WrapGormError(err)
}

// List 按最后消息时间倒序分页，sessionType 为 nil 时不过滤
func (r *ConversationRepository) List(ctx context.Context, ownerID uint, sessionType *int, limit, offset int) ([]*model.Conversation, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Conversation{}).Where("owner_id = ?", ownerID)
	if sessionType != nil {
		q = q.Where("type = ?", *sessionType)
	}
	// Count 与 Find 共用条件，需各自复制语句
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, WrapGormError(err)
	}

	var list []*model.Conversation
	err := q.Preload("Peer").
		Order("last_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&list).Error
	if err != nil {
		return nil, 0, WrapGormError(err)
	}
	return list, total, nil
}

// ResetUnread 清空未读数
func (r *ConversationRepository) ResetUnread(ctx context.Context, ownerID, peerID uint) error {
	err := r.db.WithContext(ctx).Model(&model.Conversation{}).
		Where("owner_id = ? AND peer_id = ?", ownerID, peerID).
		Update("unread_count", 0).Error
	return WrapGormError(err)
}
