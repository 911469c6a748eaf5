package handler

import (
	"social-im/internal/dto"
	"social-im/pkg/jwt"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

type ConversationHandler struct {
	service ConversationService
}

func NewConversationHandler(s ConversationService) *ConversationHandler {
	return &ConversationHandler{service: s}
}

// List 会话列表，page/limit 缺省为 1/20
func (h *ConversationHandler) List(c *gin.Context) {
	q, ok := bindQuery[dto.ConversationQuery](c, dto.ConversationQuerySchema)
	if !ok {
		return
	}
	page, err := h.service.List(c.Request.Context(), jwt.GetUserID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, page)
}
