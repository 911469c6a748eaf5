package repository

import (
	"context"

	"social-im/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FriendshipRepository 好友关系仓储
type FriendshipRepository struct {
	db *gorm.DB
}

func NewFriendshipRepository(db *gorm.DB) *FriendshipRepository {
	return &FriendshipRepository{db: db}
}

func (r *FriendshipRepository) Create(ctx context.Context, f *model.Friendship) error {
	return WrapGormError(r.db.WithContext(ctx).Create(f).Error)
}

func (r *FriendshipRepository) GetByID(ctx context.Context, id uint) (*model.Friendship, error) {
	var f model.Friendship
	if err := r.db.WithContext(ctx).First(&f, id).Error; err != nil {
		return nil, WrapGormError(err)
	}
	return &f, nil
}

// GetByPair 查询 userID -> friendID 方向的关系
func (r *FriendshipRepository) GetByPair(ctx context.Context, userID, friendID uint) (*model.Friendship, error) {
	var f model.Friendship
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND friend_id = ?", userID, friendID).
		First(&f).Error
	if err != nil {
		return nil, WrapGormError(err)
	}
	return &f, nil
}

// ListByUser 好友列表，预加载好友用户信息
func (r *FriendshipRepository) ListByUser(ctx context.Context, userID uint, status int) ([]*model.Friendship, error) {
	var list []*model.Friendship
	err := r.db.WithContext(ctx).
		Preload("Friend").
		Where("user_id = ? AND status = ?", userID, status).
		Order("updated_at DESC").
		Find(&list).Error
	return list, WrapGormError(err)
}

// ListIncoming 发给 userID 的待处理申请，预加载发起方
func (r *FriendshipRepository) ListIncoming(ctx context.Context, userID uint) ([]*model.Friendship, error) {
	var list []*model.Friendship
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("friend_id = ? AND status = ?", userID, model.FriendStatusPending).
		Order("created_at DESC").
		Find(&list).Error
	return list, WrapGormError(err)
}

// Accept 同意申请：更新申请记录并写入反向记录
func (r *FriendshipRepository) Accept(ctx context.Context, request *model.Friendship) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Friendship{}).
			Where("id = ?", request.ID).
			Update("status", model.FriendStatusAccepted).Error; err != nil {
			return err
		}
		reverse := &model.Friendship{
			UserID:   request.FriendID,
			FriendID: request.UserID,
			Status:   model.FriendStatusAccepted,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "friend_id"}},
			DoUpdates: clause.Assignments(map[string]any{"status": model.FriendStatusAccepted, "deleted_at": nil}),
		}).Create(reverse).Error
	})
	if err != nil {
		return WrapGormError(err)
	}
	request.Status = model.FriendStatusAccepted
	return nil
}

// DeletePair 解除双向好友关系，返回删除条数
// 物理删除，软删除的记录仍占用 idx_user_friend，会导致无法再次添加好友
func (r *FriendshipRepository) DeletePair(ctx context.Context, userID, friendID uint) (int64, error) {
	res := r.db.WithContext(ctx).Unscoped().
		Where("(user_id = ? AND friend_id = ?) OR (user_id = ? AND friend_id = ?)",
			userID, friendID, friendID, userID).
		Delete(&model.Friendship{})
	return res.RowsAffected, WrapGormError(res.Error)
}
