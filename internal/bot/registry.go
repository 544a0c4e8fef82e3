package bot

import (
	"errors"
	"sync"
)

// ErrEmptyBotID 注册 ID 为空的机器人
var ErrEmptyBotID = errors.New("bot id is required")

// Registry 机器人注册表，按插入顺序迭代
// 不做持久化，进程重启后清空
type Registry struct {
	mu    sync.RWMutex
	bots  map[string]*Bot
	order []string
}

// NewRegistry 创建空注册表
func NewRegistry() *Registry {
	return &Registry{bots: make(map[string]*Bot)}
}

// Register 注册机器人；ID 已存在时原位覆盖，不改变迭代顺序
func (r *Registry) Register(b *Bot) error {
	if b == nil || b.ID == "" {
		return ErrEmptyBotID
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bots[b.ID]; !ok {
		r.order = append(r.order, b.ID)
	}
	r.bots[b.ID] = b
	return nil
}

// Unregister 按 ID 移除机器人，不存在时忽略
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bots[id]; !ok {
		return
	}
	delete(r.bots, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Get 按 ID 获取机器人
func (r *Registry) Get(id string) (*Bot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bots[id]
	return b, ok
}

// Bots 返回当前注册的机器人快照
func (r *Registry) Bots() []*Bot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Bot, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.bots[id])
	}
	return out
}

// IsBot 判断某个作者 ID 是否属于已注册的机器人
func (r *Registry) IsBot(userID string) bool {
	_, ok := r.Get(userID)
	return ok
}
