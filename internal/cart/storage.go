package cart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/xihu-next/internal/cache"
	"github.com/xihu-next/internal/constants"
)

// Storage 购物车持久化存储：每个归属者一个固定槽位
// owner 为登录用户 ID 或匿名会话标识
type Storage interface {
	Load(ctx context.Context, owner string) ([]byte, bool, error)
	Save(ctx context.Context, owner string, blob []byte) error
	Delete(ctx context.Context, owner string) error
}

func storageKey(owner string) string {
	return fmt.Sprintf("cart:%s:%s", owner, constants.CartStorageKey)
}

// RedisStorage 基于 Redis 的购物车存储
type RedisStorage struct {
	ttl time.Duration
}

// NewRedisStorage 创建 Redis 存储，ttl 为槽位过期时间
func NewRedisStorage(ttl time.Duration) *RedisStorage {
	return &RedisStorage{ttl: ttl}
}

// Load 读取持久化槽位，不存在返回 false
func (s *RedisStorage) Load(ctx context.Context, owner string) ([]byte, bool, error) {
	val, hit, err := cache.GetString(ctx, storageKey(owner))
	if err != nil || !hit {
		return nil, false, err
	}
	return []byte(val), true, nil
}

// Save 写入持久化槽位并刷新过期时间
func (s *RedisStorage) Save(ctx context.Context, owner string, blob []byte) error {
	return cache.SetString(ctx, storageKey(owner), string(blob), s.ttl)
}

// Delete 清除持久化槽位
func (s *RedisStorage) Delete(ctx context.Context, owner string) error {
	return cache.Del(ctx, storageKey(owner))
}

// MemoryStorage 进程内购物车存储，Redis 未启用时兜底，也用于测试
type MemoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStorage 创建内存存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{blobs: make(map[string][]byte)}
}

// Load 读取槽位
func (s *MemoryStorage) Load(_ context.Context, owner string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	blob, ok := s.blobs[storageKey(owner)]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, true, nil
}

// Save 写入槽位
func (s *MemoryStorage) Save(_ context.Context, owner string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(blob))
	copy(stored, blob)
	s.blobs[storageKey(owner)] = stored
	return nil
}

// Delete 清除槽位
func (s *MemoryStorage) Delete(_ context.Context, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.blobs, storageKey(owner))
	return nil
}
