package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Moment 朋友圈动态
type Moment struct {
	ID        string         `gorm:"type:char(36);primaryKey"`
	UserID    uint           `gorm:"not null;index;comment:发布者"`
	Content   string         `gorm:"type:text;not null;comment:内容"`
	CreatedAt time.Time      `gorm:"index"`
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Moment) TableName() string { return "moment" }

// CommentStatus 评论状态，只有 NORMAL 与 DELETED 两个取值
// 删除评论只修改状态，不物理删除
type CommentStatus int

const (
	CommentStatusNormal  CommentStatus = 0
	CommentStatusDeleted CommentStatus = 1
)

// CommentStatuses 全部合法取值
func CommentStatuses() []CommentStatus {
	return []CommentStatus{CommentStatusNormal, CommentStatusDeleted}
}

// ParseCommentStatus 整数转状态，非法值返回错误
func ParseCommentStatus(v int) (CommentStatus, error) {
	s := CommentStatus(v)
	if !s.Valid() {
		return 0, fmt.Errorf("invalid comment status: %d", v)
	}
	return s, nil
}

func (s CommentStatus) Valid() bool {
	return s == CommentStatusNormal || s == CommentStatusDeleted
}

func (s CommentStatus) String() string {
	switch s {
	case CommentStatusNormal:
		return "NORMAL"
	case CommentStatusDeleted:
		return "DELETED"
	default:
		return fmt.Sprintf("CommentStatus(%d)", int(s))
	}
}

// MarshalJSON 拒绝序列化非法状态
func (s CommentStatus) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid comment status: %d", int(s))
	}
	return json.Marshal(int(s))
}

func (s *CommentStatus) UnmarshalJSON(data []byte) error {
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	parsed, err := ParseCommentStatus(v)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Value 实现 driver.Valuer
func (s CommentStatus) Value() (driver.Value, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid comment status: %d", int(s))
	}
	return int64(s), nil
}

// Scan 实现 sql.Scanner
func (s *CommentStatus) Scan(src any) error {
	var v int64
	switch x := src.(type) {
	case int64:
		v = x
	case []byte:
		if _, err := fmt.Sscanf(string(x), "%d", &v); err != nil {
			return fmt.Errorf("scan comment status: %w", err)
		}
	case nil:
		v = 0
	default:
		return fmt.Errorf("scan comment status: unsupported type %T", src)
	}
	parsed, err := ParseCommentStatus(int(v))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Comment 动态评论，ParentID 不为空时表示回复某条评论
type Comment struct {
	ID        string        `gorm:"type:char(36);primaryKey"`
	MomentID  string        `gorm:"type:char(36);not null;index;comment:所属动态"`
	UserID    uint          `gorm:"not null;index;comment:评论者"`
	ParentID  *string       `gorm:"type:char(36);index;comment:回复的评论ID"`
	Content   string        `gorm:"type:varchar(500);not null;comment:内容"`
	Status    CommentStatus `gorm:"type:tinyint;not null;default:0;comment:状态(0正常,1已删除)"`
	CreatedAt time.Time     `gorm:"index"`
	UpdatedAt time.Time
}

func (Comment) TableName() string { return "comment" }

// Deleted 是否已被软删除
func (c *Comment) Deleted() bool { return c.Status == CommentStatusDeleted }
