package dto

import (
	"strconv"

	"social-im/internal/model"
	"social-im/pkg/contract"
)

// CommentStatus 评论状态，NORMAL(0) / DELETED(1)
type CommentStatus = model.CommentStatus

const (
	CommentStatusNormal  = model.CommentStatusNormal
	CommentStatusDeleted = model.CommentStatusDeleted
)

// CommentRequest 发表评论，ParentID 为空表示一级评论
type CommentRequest struct {
	Content  string  `json:"content"`
	ParentID *string `json:"parent_id,omitempty"`
}

// IsReply 是否为回复
func (r CommentRequest) IsReply() bool {
	return r.ParentID != nil && *r.ParentID != ""
}

var CommentSchema = contract.NewSchema("CommentRequest", "发表动态评论",
	contract.Field{
		Name:        "content",
		Kind:        contract.KindString,
		Required:    true,
		Description: "评论内容",
		Example:     "好看！",
		Rules:       []contract.Rule{contract.MaxLength(500)},
	},
	contract.Field{
		Name:        "parent_id",
		Kind:        contract.KindString,
		Description: "被回复的评论ID",
		Example:     "0b8f6b9e-6c1e-4a7a-9a55-1f6ad0f1c2d3",
		Rules:       []contract.Rule{contract.Tag("uuid", "parent_id格式不正确")},
	},
)

// MomentRequest 发布动态
type MomentRequest struct {
	Content string `json:"content"`
}

var MomentSchema = contract.NewSchema("MomentRequest", "发布动态",
	contract.Field{
		Name:        "content",
		Kind:        contract.KindString,
		Required:    true,
		Description: "动态内容",
		Rules:       []contract.Rule{contract.MaxLength(1000)},
	},
)

// MomentView 动态
type MomentView struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

func NewMomentView(m *model.Moment) MomentView {
	return MomentView{
		ID:        m.ID,
		UserID:    strconv.FormatUint(uint64(m.UserID), 10),
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(timeLayout),
	}
}

// CommentView 评论
type CommentView struct {
	ID        string        `json:"id"`
	MomentID  string        `json:"moment_id"`
	UserID    string        `json:"user_id"`
	ParentID  *string       `json:"parent_id,omitempty"`
	Content   string        `json:"content"`
	Status    CommentStatus `json:"status"`
	CreatedAt string        `json:"created_at"`
}

var CommentViewSchema = contract.NewOutputSchema("CommentView", "评论",
	contract.Field{Name: "id", Kind: contract.KindString, Required: true},
	contract.Field{Name: "moment_id", Kind: contract.KindString, Required: true},
	contract.Field{Name: "user_id", Kind: contract.KindString, Required: true},
	contract.Field{Name: "parent_id", Kind: contract.KindString},
	contract.Field{Name: "content", Kind: contract.KindString, Required: true},
	contract.Field{
		Name:        "status",
		Kind:        contract.KindInteger,
		Required:    true,
		Description: "0正常 1已删除",
		Rules:       []contract.Rule{contract.OneOf(int64(CommentStatusNormal), int64(CommentStatusDeleted))},
	},
	contract.Field{Name: "created_at", Kind: contract.KindString, Required: true},
)

func NewCommentView(c *model.Comment) CommentView {
	return CommentView{
		ID:        c.ID,
		MomentID:  c.MomentID,
		UserID:    strconv.FormatUint(uint64(c.UserID), 10),
		ParentID:  c.ParentID,
		Content:   c.Content,
		Status:    c.Status,
		CreatedAt: c.CreatedAt.Format(timeLayout),
	}
}
