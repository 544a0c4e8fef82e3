package testutil

import (
	"context"
	"sync"
	"time"

	myredis "kama_community_server/internal/dao/redis"
)

// MemoryCache 内存版 AsyncCacheService
// 默认任务同步执行；Deferred 为 true 时任务排队，直到 Flush
type MemoryCache struct {
	mu       sync.Mutex
	data     map[string]string
	pending  []func()
	Deferred bool
	Gets     int
	Hits     int
}

// NewMemoryCache 创建 MemoryCache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (m *MemoryCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Gets++
	v, ok := m.data[key]
	if ok {
		m.Hits++
	}
	return v, nil
}

func (m *MemoryCache) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

// Has 判断键是否存在
func (m *MemoryCache) Has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[key]
	return ok
}

func (m *MemoryCache) SubmitTask(action func()) {
	m.mu.Lock()
	if m.Deferred {
		m.pending = append(m.pending, action)
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()
	action()
}

// Flush 执行排队中的任务
func (m *MemoryCache) Flush() {
	m.mu.Lock()
	tasks := m.pending
	m.pending = nil
	m.mu.Unlock()
	for _, task := range tasks {
		task()
	}
}

func (m *MemoryCache) Close() {}

var _ myredis.AsyncCacheService = (*MemoryCache)(nil)
