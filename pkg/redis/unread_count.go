package redis

import (
	"fmt"
	"strconv"
	"time"
)

// 未读计数：每个用户一个hash，field为会话对方的用户ID
const (
	unreadPrefix = "unread:"
	unreadTTL    = 24 * time.Hour
)

// IncrementUnread 增加 userID 与 peerID 会话的未读数
func IncrementUnread(userID, peerID uint) error {
	if client == nil {
		return errNotInitialized
	}
	key := userKey(unreadPrefix, userID)

	pipe := client.TxPipeline()
	pipe.HIncrBy(ctx, key, strconv.FormatUint(uint64(peerID), 10), 1)
	pipe.Expire(ctx, key, unreadTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("增加未读消息计数失败: %w", err)
	}
	return nil
}

// ResetUnread 清空某个会话的未读数
func ResetUnread(userID, peerID uint) error {
	if client == nil {
		return errNotInitialized
	}
	err := client.HDel(ctx, userKey(unreadPrefix, userID), strconv.FormatUint(uint64(peerID), 10)).Err()
	if err != nil {
		return fmt.Errorf("重置未读消息计数失败: %w", err)
	}
	return nil
}

// GetUnreadCounts 获取用户所有会话的未读数
func GetUnreadCounts(userID uint) (map[uint]int64, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	values, err := client.HGetAll(ctx, userKey(unreadPrefix, userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("获取未读消息计数失败: %w", err)
	}
	return parseUnreadCounts(values), nil
}

// parseUnreadCounts 跳过无法解析或非正数的字段
func parseUnreadCounts(values map[string]string) map[uint]int64 {
	counts := make(map[uint]int64, len(values))
	for field, raw := range values {
		peerID, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		counts[uint(peerID)] = n
	}
	return counts
}
