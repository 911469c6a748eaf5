package handler

import (
	"social-im/internal/dto"
	"social-im/pkg/jwt"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

// MomentHandler 动态与评论
type MomentHandler struct {
	service MomentService
}

func NewMomentHandler(s MomentService) *MomentHandler {
	return &MomentHandler{service: s}
}

// CreateMoment 发布动态
func (h *MomentHandler) CreateMoment(c *gin.Context) {
	req, ok := bindJSON[dto.MomentRequest](c, dto.MomentSchema)
	if !ok {
		return
	}
	m, err := h.service.CreateMoment(c.Request.Context(), jwt.GetUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, dto.NewMomentView(m))
}

// AddComment 评论动态，带 parent_id 时为回复
func (h *MomentHandler) AddComment(c *gin.Context) {
	req, ok := bindJSON[dto.CommentRequest](c, dto.CommentSchema)
	if !ok {
		return
	}
	comment, err := h.service.AddComment(c.Request.Context(), jwt.GetUserID(c), c.Param("moment_id"), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, dto.NewCommentView(comment))
}

func (h *MomentHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Param("moment_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	views := make([]dto.CommentView, 0, len(comments))
	for _, cm := range comments {
		views = append(views, dto.NewCommentView(cm))
	}
	response.Success(c, views)
}

// DeleteComment 仅作者可删除
func (h *MomentHandler) DeleteComment(c *gin.Context) {
	if err := h.service.DeleteComment(c.Request.Context(), jwt.GetUserID(c), c.Param("comment_id")); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, nil)
}
