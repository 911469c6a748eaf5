package model

import (
	"time"

	"gorm.io/gorm"
)

// 好友关系状态码
const (
	FriendStatusPending  = 0 // 待处理
	FriendStatusAccepted = 1 // 已同意
	FriendStatusBlocked  = 2 // 已拉黑
)

// Friendship 好友关系，UserID 为发起方
// 同意后双方各持有一条记录，便于按 user_id 直接查询好友列表

type Friendship struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;uniqueIndex:idx_user_friend;comment:用户ID"`
	FriendID  uint           `gorm:"not null;uniqueIndex:idx_user_friend;index;comment:好友ID"`
	Status    int            `gorm:"type:tinyint;not null;default:0;comment:关系状态(0待处理,1已同意,2已拉黑)"`
	Message   string         `gorm:"type:varchar(100);comment:申请附言"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index"`

	User   User `gorm:"foreignKey:UserID"`
	Friend User `gorm:"foreignKey:FriendID"`
}

func (Friendship) TableName() string { return "friendship" }
