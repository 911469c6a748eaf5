package dto

import (
	"strconv"

	"social-im/internal/model"
	"social-im/pkg/contract"
)

// MaxPage 页码上限，保证 (page-1)*limit 不会溢出
const MaxPage = 10000

// ConversationQuery 会话列表查询参数
type ConversationQuery struct {
	Page  int  `json:"page"`
	Limit int  `json:"limit"`
	Type  *int `json:"type,omitempty"`
}

// Offset 计算分页偏移量
func (q ConversationQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

var ConversationQuerySchema = contract.NewSchema("ConversationQuery", "分页查询会话列表",
	contract.Field{
		Name:        "page",
		Kind:        contract.KindInteger,
		Default:     1,
		Description: "页码，从1开始",
		Example:     1,
		Rules:       []contract.Rule{contract.Range(1, MaxPage)},
	},
	contract.Field{
		Name:        "limit",
		Kind:        contract.KindInteger,
		Default:     20,
		Description: "每页条数",
		Example:     20,
		Rules:       []contract.Rule{contract.Range(1, 100)},
	},
	contract.Field{
		Name:        "type",
		Kind:        contract.KindInteger,
		Description: "会话类型过滤，1单聊 2群聊",
		Example:     1,
	},
)

// ConversationView 会话列表项
type ConversationView struct {
	PeerID      string `json:"peer_id"`
	Username    string `json:"username"`
	Nickname    string `json:"nickname"`
	AvatarURL   string `json:"avatar_url,omitempty"`
	Type        int    `json:"type"`
	LastMessage string `json:"last_message"`
	LastTime    string `json:"last_time"`
	UnreadCount int64  `json:"unread_count"`
}

var ConversationViewSchema = contract.NewOutputSchema("ConversationView", "会话列表项",
	contract.Field{Name: "peer_id", Kind: contract.KindString, Required: true},
	contract.Field{Name: "username", Kind: contract.KindString, Required: true},
	contract.Field{Name: "nickname", Kind: contract.KindString, Required: true},
	contract.Field{Name: "avatar_url", Kind: contract.KindString},
	contract.Field{Name: "type", Kind: contract.KindInteger, Required: true},
	contract.Field{Name: "last_message", Kind: contract.KindString, Required: true},
	contract.Field{Name: "last_time", Kind: contract.KindString, Required: true},
	contract.Field{Name: "unread_count", Kind: contract.KindInteger, Required: true},
)

// NewConversationView 由会话记录构造列表项，Peer 需已预加载
func NewConversationView(c *model.Conversation) ConversationView {
	return ConversationView{
		PeerID:      strconv.FormatUint(uint64(c.PeerID), 10),
		Username:    c.Peer.Username,
		Nickname:    c.Peer.DisplayName(),
		AvatarURL:   c.Peer.Avatar,
		Type:        c.Type,
		LastMessage: c.LastMessage,
		LastTime:    c.LastTime.Format(timeLayout),
		UnreadCount: c.UnreadCount,
	}
}

// ConversationPage 分页结果
type ConversationPage struct {
	Page  int                `json:"page"`
	Limit int                `json:"limit"`
	Total int64              `json:"total"`
	Items []ConversationView `json:"items"`
}
