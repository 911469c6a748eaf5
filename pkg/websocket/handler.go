package websocket

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"social-im/config"
	"social-im/pkg/jwt"
	"social-im/pkg/logger"
	"social-im/pkg/redis"
	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// PresenceStore 持久化在线状态
type PresenceStore interface {
	UpdatePresence(ctx context.Context, userID uint, status string, at time.Time) error
}

// Handler WebSocket 接入
type Handler struct {
	jwt      *jwt.JWTService
	manager  *Manager
	notifier *Notifier
	presence PresenceStore
	cfg      config.WebSocketConfig
}

func NewHandler(jwtSvc *jwt.JWTService, manager *Manager, notifier *Notifier, presence PresenceStore, cfg config.WebSocketConfig) *Handler {
	if cfg.PingInterval <= 0 {
		cfg.PingInterval = 30 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 2 * cfg.PingInterval
	}
	return &Handler{jwt: jwtSvc, manager: manager, notifier: notifier, presence: presence, cfg: cfg}
}

// inbound 客户端上行帧
type inbound struct {
	Type string `json:"type"`
}

// Serve token 通过 query 参数或 Sec-WebSocket-Protocol 传入
func (h *Handler) Serve(c *gin.Context) {
	token := c.Query("token")
	protocol := c.GetHeader("Sec-WebSocket-Protocol")
	if token == "" {
		token = strings.TrimPrefix(protocol, "Bearer ")
	}
	if token == "" {
		response.Unauthorized(c, "缺少token")
		return
	}

	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Unauthorized(c, "token无效或已过期")
		return
	}
	userID, err := claims.UserID()
	if err != nil {
		response.Unauthorized(c, "token无效")
		return
	}
	username := claims.Username()

	// 回显子协议，避免客户端提示 "Server sent no subprotocol"
	respHeader := http.Header{}
	if protocol != "" {
		respHeader.Set("Sec-WebSocket-Protocol", protocol)
	}
	conn, err := upgrader.Upgrade(c.Writer, c.Request, respHeader)
	if err != nil {
		logger.Warn("WebSocket升级失败", zap.Error(err))
		return
	}

	client := NewClient(userID, conn)
	h.manager.AddClient(client)
	h.setPresence(userID, username, redis.StatusOnline)
	logger.Info("WebSocket已连接", zap.Uint("user_id", userID))

	defer func() {
		current := h.manager.RemoveClient(client)
		_ = conn.Close()
		// 被新连接顶替时用户仍在线
		if current {
			h.setPresence(userID, username, redis.StatusOffline)
		}
		logger.Info("WebSocket已断开", zap.Uint("user_id", userID), zap.Bool("replaced", !current))
	}()

	go h.writePump(client)
	go h.notifier.flushOffline(client)

	h.readLoop(client)
}

func (h *Handler) setPresence(userID uint, username, status string) {
	if h.presence != nil {
		if err := h.presence.UpdatePresence(context.Background(), userID, status, time.Now()); err != nil {
			logger.Warn("更新在线状态失败", zap.Uint("user_id", userID), zap.Error(err))
		}
	}
	_ = redis.SetUserPresence(userID, username, status)
}

// writePump 发送队列关闭时退出
func (h *Handler) writePump(client *Client) {
	ticker := time.NewTicker(h.cfg.PingInterval)
	defer ticker.Stop()
	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				_ = client.Conn.WriteControl(websocket.CloseMessage, nil, time.Now().Add(time.Second))
				return
			}
			if err := client.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := client.Conn.WriteControl(websocket.PingMessage, []byte("ping"), time.Now().Add(5*time.Second)); err != nil {
				return
			}
		}
	}
}

// readLoop 读超时内没有任何数据则断开
func (h *Handler) readLoop(client *Client) {
	conn := client.Conn
	_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))
	})

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(h.cfg.ReadTimeout))

		var msg inbound
		if err := json.Unmarshal(payload, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "heartbeat":
			_ = redis.RefreshUserPresence(client.UserID)
			h.notifier.Notify(client.UserID, Event{Type: EventPong})
		}
	}
}
