package dto

import (
	"strconv"

	"social-im/internal/model"
	"social-im/pkg/contract"
)

// SendMessageRequest 发送私聊消息
type SendMessageRequest struct {
	ReceiverID uint   `json:"receiver_id"`
	Content    string `json:"content"`
}

var SendMessageSchema = contract.NewSchema("SendMessageRequest", "发送私聊消息",
	contract.Field{
		Name:     "receiver_id",
		Kind:     contract.KindInteger,
		Required: true,
		Example:  2,
		Rules:    []contract.Rule{contract.Min(1)},
	},
	contract.Field{
		Name:     "content",
		Kind:     contract.KindString,
		Required: true,
		Example:  "hello",
		Rules:    []contract.Rule{contract.MaxLength(2000)},
	},
)

// HistoryQuery 私聊历史分页
type HistoryQuery struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// Offset 计算分页偏移量
func (q HistoryQuery) Offset() int {
	return (q.Page - 1) * q.PageSize
}

var HistoryQuerySchema = contract.NewSchema("HistoryQuery", "私聊历史分页",
	contract.Field{Name: "page", Kind: contract.KindInteger, Default: 1, Rules: []contract.Rule{contract.Range(1, MaxPage)}},
	contract.Field{Name: "page_size", Kind: contract.KindInteger, Default: 20, Rules: []contract.Rule{contract.Range(1, 100)}},
)

// MessageView 消息
type MessageView struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Content    string `json:"content"`
	MsgType    string `json:"msg_type"`
	IsRead     bool   `json:"is_read"`
	CreatedAt  string `json:"created_at"`
}

func NewMessageView(m *model.Message) MessageView {
	return MessageView{
		ID:         strconv.FormatUint(uint64(m.ID), 10),
		SenderID:   strconv.FormatUint(uint64(m.SenderID), 10),
		ReceiverID: strconv.FormatUint(uint64(m.ReceiverID), 10),
		Content:    m.Content,
		MsgType:    m.MsgType,
		IsRead:     m.IsRead,
		CreatedAt:  m.CreatedAt.Format(timeLayout),
	}
}
