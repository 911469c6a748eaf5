package repository

import (
	"context"

	"social-im/internal/model"

	"gorm.io/gorm"
)

// MomentRepository 动态与评论仓储
type MomentRepository struct {
	db *gorm.DB
}

func NewMomentRepository(db *gorm.DB) *MomentRepository {
	return &MomentRepository{db: db}
}

func (r *MomentRepository) CreateMoment(ctx context.Context, m *model.Moment) error {
	return WrapGormError(r.db.WithContext(ctx).Create(m).Error)
}

func (r *MomentRepository) GetMoment(ctx context.Context, id string) (*model.Moment, error) {
	var m model.Moment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, WrapGormError(err)
	}
	return &m, nil
}

func (r *MomentRepository) CreateComment(ctx context.Context, c *model.Comment) error {
	return WrapGormError(r.db.WithContext(ctx).Create(c).Error)
}

// GetComment 按ID查询评论（包含已删除）
func (r *MomentRepository) GetComment(ctx context.Context, id string) (*model.Comment, error) {
	var c model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, WrapGormError(err)
	}
	return &c, nil
}

// ListComments 动态下的正常评论，按发表时间正序
func (r *MomentRepository) ListComments(ctx context.Context, momentID string) ([]*model.Comment, error) {
	var list []*model.Comment
	err := r.db.WithContext(ctx).
		Where("moment_id = ? AND status = ?", momentID, model.CommentStatusNormal).
		Order("created_at ASC").
		Find(&list).Error
	return list, WrapGormError(err)
}

// UpdateCommentStatus 修改评论状态
func (r *MomentRepository) UpdateCommentStatus(ctx context.Context, id string, status model.CommentStatus) error {
	res := r.db.WithContext(ctx).Model(&model.Comment{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return WrapGormError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
