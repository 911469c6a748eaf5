package model

import (
	"time"

	"gorm.io/gorm"
)

// User 用户模型
// 用户名、邮箱、手机号均唯一；手机号可为空，因此用指针保存（NULL 不参与唯一约束）
// 密码仅存储哈希（PasswordHash）

type User struct {
	ID           uint           `gorm:"primaryKey"`
	Username     string         `gorm:"type:varchar(32);not null;uniqueIndex;comment:用户名"`
	Email        string         `gorm:"type:varchar(128);not null;uniqueIndex;comment:邮箱"`
	Phone        *string        `gorm:"type:varchar(32);uniqueIndex;comment:手机号"`
	PasswordHash string         `gorm:"type:varchar(255);not null;comment:密码哈希"`
	Nickname     string         `gorm:"type:varchar(64);comment:昵称"`
	Avatar       string         `gorm:"type:varchar(255);comment:头像URL"`
	Status       string         `gorm:"type:varchar(32);default:'offline';comment:在线状态"`
	LastSeen     time.Time      `gorm:"comment:最近在线时间"`
	CreatedAt    time.Time      `gorm:"comment:创建时间"`
	UpdatedAt    time.Time      `gorm:"comment:更新时间"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName 全局使用单数表名
func (User) TableName() string { return "user" }

// DisplayName 昵称为空时回退到用户名
func (u *User) DisplayName() string {
	if u.Nickname != "" {
		return u.Nickname
	}
	return u.Username
}
