package handler

import (
	"social-im/internal/dto"
	"social-im/pkg/jwt"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

// MessageHandler 私聊消息
type MessageHandler struct {
	service MessageService
}

func NewMessageHandler(s MessageService) *MessageHandler {
	return &MessageHandler{service: s}
}

// SendMessage 发送消息
func (h *MessageHandler) SendMessage(c *gin.Context) {
	req, ok := bindJSON[dto.SendMessageRequest](c, dto.SendMessageSchema)
	if !ok {
		return
	}
	message, err := h.service.SendMessage(c.Request.Context(), jwt.GetUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, dto.NewMessageView(message))
}

// GetPrivateMessages 与 user_id 的私聊历史
func (h *MessageHandler) GetPrivateMessages(c *gin.Context) {
	peerID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	q, ok := bindQuery[dto.HistoryQuery](c, dto.HistoryQuerySchema)
	if !ok {
		return
	}
	messages, err := h.service.History(c.Request.Context(), jwt.GetUserID(c), peerID, q)
	if err != nil {
		writeError(c, err)
		return
	}
	views := make([]dto.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, dto.NewMessageView(m))
	}
	response.Success(c, gin.H{
		"page":      q.Page,
		"page_size": q.PageSize,
		"messages":  views,
	})
}

// MarkRead 将与 user_id 的会话标记为已读
func (h *MessageHandler) MarkRead(c *gin.Context) {
	peerID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	n, err := h.service.MarkRead(c.Request.Context(), jwt.GetUserID(c), peerID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{"updated": n})
}
