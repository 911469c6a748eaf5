package model

import "time"

// Conversation 会话列表项，每个 (OwnerID, PeerID) 一条，发送消息时双方各自更新
type Conversation struct {
	ID          uint      `gorm:"primaryKey"`
	OwnerID     uint      `gorm:"not null;uniqueIndex:idx_owner_peer;index:idx_owner_time,priority:1;comment:会话所属用户"`
	PeerID      uint      `gorm:"not null;uniqueIndex:idx_owner_peer;comment:对方用户ID"`
	Type        int       `gorm:"type:int;not null;default:1;comment:会话类型(1单聊,2群聊)"`
	LastMessage string    `gorm:"type:varchar(255);comment:最后一条消息预览"`
	LastTime    time.Time `gorm:"index:idx_owner_time,priority:2;comment:最后消息时间"`
	UnreadCount int64     `gorm:"not null;default:0;comment:未读数"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Peer User `gorm:"foreignKey:PeerID"`
}

func (Conversation) TableName() string { return "conversation" }
