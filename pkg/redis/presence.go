package redis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// 在线状态
const (
	StatusOnline  = "online"
	StatusOffline = "offline"
)

const (
	presencePrefix = "presence:user:"
	onlineUsersKey = KeyPrefix + "online:users"
	// PresenceTTL 两倍心跳周期
	PresenceTTL = 2 * time.Minute
)

// PresenceData 在线状态数据
type PresenceData struct {
	UserID   uint      `json:"user_id"`
	Username string    `json:"username"`
	Status   string    `json:"status"`
	LastSeen time.Time `json:"last_seen"`
}

// SetUserPresence 设置用户在线状态
func SetUserPresence(userID uint, username, status string) error {
	if client == nil {
		return errNotInitialized
	}

	data, err := json.Marshal(PresenceData{
		UserID:   userID,
		Username: username,
		Status:   status,
		LastSeen: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("序列化在线状态失败: %w", err)
	}

	pipe := client.TxPipeline()
	pipe.Set(ctx, userKey(presencePrefix, userID), data, PresenceTTL)
	if status == StatusOnline {
		pipe.SAdd(ctx, onlineUsersKey, userID)
	} else {
		pipe.SRem(ctx, onlineUsersKey, userID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("设置用户在线状态失败: %w", err)
	}
	return nil
}

// GetUserPresence 获取用户在线状态
func GetUserPresence(userID uint) (*PresenceData, error) {
	if client == nil {
		return nil, errNotInitialized
	}

	data, err := client.Get(ctx, userKey(presencePrefix, userID)).Bytes()
	if err != nil {
		return nil, fmt.Errorf("获取用户在线状态失败: %w", err)
	}

	var presence PresenceData
	if err := json.Unmarshal(data, &presence); err != nil {
		return nil, fmt.Errorf("反序列化在线状态失败: %w", err)
	}
	return &presence, nil
}

// IsUserOnline 检查用户是否在线
func IsUserOnline(userID uint) (bool, error) {
	presence, err := GetUserPresence(userID)
	if err != nil {
		return false, err
	}
	return presence.Status == StatusOnline, nil
}

// RefreshUserPresence 延长在线状态TTL，心跳时调用
func RefreshUserPresence(userID uint) error {
	if client == nil {
		return errNotInitialized
	}
	ok, err := client.Expire(ctx, userKey(presencePrefix, userID), PresenceTTL).Result()
	if err != nil {
		return fmt.Errorf("刷新用户在线状态失败: %w", err)
	}
	if !ok {
		return fmt.Errorf("用户不在线")
	}
	return nil
}

// GetOnlineUsers 获取所有在线用户ID
func GetOnlineUsers() ([]uint, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	members, err := client.SMembers(ctx, onlineUsersKey).Result()
	if err != nil {
		return nil, fmt.Errorf("获取在线用户列表失败: %w", err)
	}

	userIDs := make([]uint, 0, len(members))
	for _, member := range members {
		if id, err := strconv.ParseUint(member, 10, 64); err == nil {
			userIDs = append(userIDs, uint(id))
		}
	}
	return userIDs, nil
}
