package repository

import (
	"context"
	"time"

	"social-im/internal/model"

	"gorm.io/gorm"
)

// UserRepository 用户数据仓储
type UserRepository struct {
	orm *gorm.DB
}

func NewUserRepository(orm *gorm.DB) *UserRepository {
	return &UserRepository{orm: orm}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return WrapGormError(r.orm.WithContext(ctx).Create(user).Error)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var u model.User
	if err := r.orm.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, WrapGormError(err)
	}
	return &u, nil
}

// GetByAccount 按用户名、邮箱或手机号查找用户
func (r *UserRepository) GetByAccount(ctx context.Context, account string) (*model.User, error) {
	var u model.User
	err := r.orm.WithContext(ctx).
		Where("username = ? OR email = ? OR phone = ?", account, account, account).
		First(&u).Error
	if err != nil {
		return nil, WrapGormError(err)
	}
	return &u, nil
}

// ExistsConflict 判断用户名、邮箱或手机号是否已被占用，phone 为空时不参与判断
func (r *UserRepository) ExistsConflict(ctx context.Context, username, email, phone string) (bool, error) {
	q := r.orm.WithContext(ctx).Model(&model.User{}).Where("username = ? OR email = ?", username, email)
	if phone != "" {
		q = q.Or("phone = ?", phone)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, WrapGormError(err)
	}
	return count > 0, nil
}

// UpdatePresence 更新在线状态与最近在线时间
func (r *UserRepository) UpdatePresence(ctx context.Context, id uint, status string, at time.Time) error {
	err := r.orm.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "last_seen": at}).Error
	return WrapGormError(err)
}
