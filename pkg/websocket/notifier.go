package websocket

import (
	"encoding/json"
	"time"

	"social-im/pkg/logger"
	"social-im/pkg/redis"

	"go.uber.org/zap"
)

// 推送事件类型
const (
	EventChat          = "chat"
	EventCommentReply  = "comment_reply"
	EventMomentComment = "moment_comment"
	EventFriendApply   = "friend_request"
	EventPong          = "pong"
)

// Event 推送给客户端的数据帧
type Event struct {
	Type      string `json:"type"`
	From      uint   `json:"from"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
}

// Notifier 推送事件，用户不在线时写入Redis离线队列
type Notifier struct {
	manager *Manager
}

func NewNotifier(manager *Manager) *Notifier {
	return &Notifier{manager: manager}
}

// Notify 返回是否实时送达
func (n *Notifier) Notify(userID uint, event Event) bool {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	data, err := json.Marshal(event)
	if err != nil {
		logger.Error("序列化推送事件失败", zap.String("type", event.Type), zap.Error(err))
		return false
	}
	if n.manager.SendToUser(userID, data) {
		return true
	}

	payload, err := json.Marshal(event.Data)
	if err != nil {
		return false
	}
	offline := &redis.Notification{
		Type:      event.Type,
		From:      event.From,
		Payload:   payload,
		CreatedAt: time.Unix(event.Timestamp, 0),
	}
	if err := redis.AddOfflineNotification(userID, offline); err != nil {
		logger.Debug("离线推送未保存", zap.Uint("user_id", userID), zap.Error(err))
	}
	return false
}

// flushOffline 用户上线后补发离线推送
func (n *Notifier) flushOffline(client *Client) {
	pending, err := redis.PopOfflineNotifications(client.UserID)
	if err != nil {
		return
	}
	for _, p := range pending {
		n.Notify(client.UserID, Event{
			Type:      p.Type,
			From:      p.From,
			Data:      p.Payload,
			Timestamp: p.CreatedAt.Unix(),
		})
	}
}
