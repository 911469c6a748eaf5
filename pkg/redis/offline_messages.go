package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// Notification 离线期间积压的推送（新消息、评论回复等）
type Notification struct {
	Type      string          `json:"type"`
	From      uint            `json:"from"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

const (
	offlinePrefix = "offline:"
	offlineTTL    = 7 * 24 * time.Hour
	// MaxOfflineNotifications 每个用户最多保留的离线推送
	MaxOfflineNotifications = 100
)

// AddOfflineNotification 保存离线推送，最新的在列表头部
func AddOfflineNotification(userID uint, n *Notification) error {
	if client == nil {
		return errNotInitialized
	}
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("序列化离线推送失败: %w", err)
	}

	key := userKey(offlinePrefix, userID)
	pipe := client.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, MaxOfflineNotifications-1)
	pipe.Expire(ctx, key, offlineTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("保存离线推送失败: %w", err)
	}
	return nil
}

// PopOfflineNotifications 取出并清空离线推送，按时间正序返回
func PopOfflineNotifications(userID uint) ([]*Notification, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	key := userKey(offlinePrefix, userID)

	pipe := client.TxPipeline()
	rangeCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("获取离线推送失败: %w", err)
	}
	return decodeNotifications(rangeCmd.Val()), nil
}

// decodeNotifications 列表为倒序存储，这里翻转为正序并跳过无法解析的项
func decodeNotifications(raw []string) []*Notification {
	out := make([]*Notification, 0, len(raw))
	for i := len(raw) - 1; i >= 0; i-- {
		var n Notification
		if err := json.Unmarshal([]byte(raw[i]), &n); err != nil {
			continue
		}
		out = append(out, &n)
	}
	return out
}
