package handler

import (
	"net/http"
	"strconv"

	"social-im/internal/dto"
	"social-im/pkg/jwt"
	"social-im/pkg/redis"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	service UserService
}

func NewUserHandler(s UserService) *UserHandler {
	return &UserHandler{service: s}
}

// Register 用户注册
func (h *UserHandler) Register(c *gin.Context) {
	req, ok := bindJSON[dto.RegisterRequest](c, dto.RegisterSchema)
	if !ok {
		return
	}
	user, token, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Created(c, &dto.AuthResponse{User: dto.NewUserView(user), AccessToken: token})
}

// Login 用户登录
func (h *UserHandler) Login(c *gin.Context) {
	req, ok := bindJSON[dto.LoginRequest](c, dto.LoginSchema)
	if !ok {
		return
	}
	user, token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, &dto.AuthResponse{User: dto.NewUserView(user), AccessToken: token})
}

// GetProfile 当前登录用户
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.service.Profile(c.Request.Context(), jwt.GetUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, dto.NewUserView(user))
}

// GetOnlineUsers 在线用户ID列表，依赖Redis
func (h *UserHandler) GetOnlineUsers(c *gin.Context) {
	ids, err := redis.GetOnlineUsers()
	if err != nil {
		response.Error(c, http.StatusServiceUnavailable, "在线状态服务不可用")
		return
	}
	users := make([]string, 0, len(ids))
	for _, id := range ids {
		users = append(users, strconv.FormatUint(uint64(id), 10))
	}
	response.Success(c, gin.H{
		"online_count": len(users),
		"users":        users,
	})
}

// CheckUserOnline 查询指定用户是否在线
func (h *UserHandler) CheckUserOnline(c *gin.Context) {
	userID, ok := uintParam(c, "user_id")
	if !ok {
		return
	}
	// Redis不可用时视为离线
	online, _ := redis.IsUserOnline(userID)
	result := gin.H{
		"user_id": strconv.FormatUint(uint64(userID), 10),
		"online":  online,
	}
	if online {
		if p, err := redis.GetUserPresence(userID); err == nil {
			result["last_seen"] = p.LastSeen.Format("2006-01-02 15:04:05")
		}
	}
	response.Success(c, result)
}
