package handler

import (
	"strconv"

	"social-im/internal/dto"
	"social-im/pkg/jwt"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

// FriendHandler 好友与好友申请
type FriendHandler struct {
	service FriendService
}

func NewFriendHandler(s FriendService) *FriendHandler {
	return &FriendHandler{service: s}
}

// SendRequest 发送好友申请
func (h *FriendHandler) SendRequest(c *gin.Context) {
	req, ok := bindJSON[dto.FriendRequestCreate](c, dto.FriendRequestSchema)
	if !ok {
		return
	}
	f, err := h.service.SendRequest(c.Request.Context(), jwt.GetUserID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, gin.H{
		"id":     strconv.FormatUint(uint64(f.ID), 10),
		"status": f.Status,
	})
}

// Accept 同意好友申请
func (h *FriendHandler) Accept(c *gin.Context) {
	requestID, ok := uintParam(c, "request_id")
	if !ok {
		return
	}
	f, err := h.service.Accept(c.Request.Context(), jwt.GetUserID(c), requestID)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, gin.H{
		"id":     strconv.FormatUint(uint64(f.ID), 10),
		"status": f.Status,
	})
}

// Remove 删除好友，双方记录一并删除
func (h *FriendHandler) Remove(c *gin.Context) {
	friendID, ok := uintParam(c, "friend_id")
	if !ok {
		return
	}
	if err := h.service.Remove(c.Request.Context(), jwt.GetUserID(c), friendID); err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, nil)
}

// List 好友列表，可按 status 过滤
func (h *FriendHandler) List(c *gin.Context) {
	q, ok := bindQuery[dto.FriendListQuery](c, dto.FriendListQuerySchema)
	if !ok {
		return
	}
	friends, err := h.service.List(c.Request.Context(), jwt.GetUserID(c), q)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, friends)
}

// Incoming 收到的待处理申请
func (h *FriendHandler) Incoming(c *gin.Context) {
	requests, err := h.service.Incoming(c.Request.Context(), jwt.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, requests)
}
