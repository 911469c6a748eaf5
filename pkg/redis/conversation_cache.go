package redis

import (
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 会话列表缓存：每个用户一个hash，field 为查询条件，value 为序列化后的分页结果
const (
	conversationPrefix = "conversations:"
	// ConversationCacheTTL 会话列表缓存有效期
	ConversationCacheTTL = 10 * time.Minute
)

// ErrCacheMiss 缓存未命中
var ErrCacheMiss = errors.New("缓存未命中")

// ConversationQueryField 查询条件对应的hash field
func ConversationQueryField(page, limit int, sessionType *int) string {
	if sessionType == nil {
		return fmt.Sprintf("p%d:l%d", page, limit)
	}
	return fmt.Sprintf("p%d:l%d:t%d", page, limit, *sessionType)
}

// GetCachedConversations 读取缓存的会话列表
func GetCachedConversations(userID uint, field string) ([]byte, error) {
	if client == nil {
		return nil, errNotInitialized
	}
	data, err := client.HGet(ctx, userKey(conversationPrefix, userID), field).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("读取会话缓存失败: %w", err)
	}
	return data, nil
}

// CacheConversations 写入会话列表缓存
func CacheConversations(userID uint, field string, data []byte) error {
	if client == nil {
		return errNotInitialized
	}
	key := userKey(conversationPrefix, userID)
	pipe := client.TxPipeline()
	pipe.HSet(ctx, key, field, data)
	pipe.Expire(ctx, key, ConversationCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("写入会话缓存失败: %w", err)
	}
	return nil
}

// InvalidateConversations 会话有变化时清除相关用户的全部缓存
func InvalidateConversations(userIDs ...uint) error {
	if client == nil {
		return errNotInitialized
	}
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, userKey(conversationPrefix, id))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("清除会话缓存失败: %w", err)
	}
	return nil
}
