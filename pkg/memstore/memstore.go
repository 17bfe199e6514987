package memstore

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/fahadturjmi/GPA-Calculator/config"
)

// Client 进程内 TTL 存储封装
// 用于会话工作区快照与限流计数；进程退出即清空，不做跨会话持久化
type Client struct {
	c      *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewClient 创建内存存储，ttl 为默认过期时间（滑动续期）
func NewClient(cfg *config.SessionConfig, logger *zap.Logger) *Client {
	cleanup := cfg.CleanupInterval
	if cleanup <= 0 {
		cleanup = 10 * time.Minute
	}

	c := cache.New(cfg.TTL, cleanup)
	c.OnEvicted(func(key string, _ interface{}) {
		logger.Debug("内存存储键已过期", zap.String("key", key))
	})

	logger.Info("内存存储初始化完成",
		zap.Duration("ttl", cfg.TTL),
		zap.Duration("cleanup_interval", cleanup),
	)

	return &Client{c: c, ttl: cfg.TTL, logger: logger}
}

// ── 通用键值 ──

// Get 读取键值，只读，不刷新 TTL
func (s *Client) Get(key string) (interface{}, bool) {
	return s.c.Get(key)
}

// Set 写入键值，使用默认 TTL；重写同一值即为续期
func (s *Client) Set(key string, v interface{}) {
	s.c.Set(key, v, cache.DefaultExpiration)
}

// Delete 删除键
func (s *Client) Delete(key string) {
	s.c.Delete(key)
}

// Count 当前键数量（含尚未清理的过期键）
func (s *Client) Count() int {
	return s.c.ItemCount()
}

// ── 限流 ──

const rateLimitPrefix = "rate_limit:"

// CheckRateLimit 固定窗口计数，窗口内第 limit+1 次起返回 false
func (s *Client) CheckRateLimit(key string, limit int, window time.Duration) (bool, error) {
	k := rateLimitPrefix + key

	// 窗口首个请求：Add 仅在键不存在时成功
	if err := s.c.Add(k, 1, window); err == nil {
		return true, nil
	}

	n, err := s.c.IncrementInt(k, 1)
	if err != nil {
		// 计数键恰好过期，重新开窗
		s.c.Set(k, 1, window)
		return true, nil
	}
	if n < 0 {
		return false, fmt.Errorf("限流计数异常: %d", n)
	}
	return n <= limit, nil
}
