package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"social-im/config"

	"github.com/redis/go-redis/v9"
)

// KeyPrefix 所有key的公共前缀
const KeyPrefix = "sim:"

var errNotInitialized = errors.New("redis客户端未初始化")

var (
	client *redis.Client
	ctx    = context.Background()
)

// InitRedis 初始化Redis连接
func InitRedis(cfg config.RedisConfig) error {
	c := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return fmt.Errorf("redis连接失败: %w", err)
	}

	client = c
	return nil
}

// GetClient 获取Redis客户端，未初始化时返回nil
func GetClient() *redis.Client {
	return client
}

// Enabled Redis是否可用
func Enabled() bool {
	return client != nil
}

// Close 关闭Redis连接
func Close() error {
	if client == nil {
		return nil
	}
	err := client.Close()
	client = nil
	return err
}

// HealthCheck 检查Redis健康状态
func HealthCheck() error {
	if client == nil {
		return errNotInitialized
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis连接异常: %w", err)
	}
	return nil
}

func userKey(prefix string, userID uint) string {
	return fmt.Sprintf("%s%s%d", KeyPrefix, prefix, userID)
}
