package bot

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/constants"

	"go.uber.org/zap"
)

// 事件类型
const (
	EventMessage  = "message"
	EventJoin     = "join"
	EventReaction = "reaction"
)

// Dispatcher 将事件分发给注册表中的所有机器人
// 每个机器人在独立的 goroutine 中执行，带超时和 panic 恢复，互不影响
type Dispatcher struct {
	registry *Registry
	timeout  time.Duration
}

// NewDispatcher 创建分发器，timeout <= 0 时使用默认值
func NewDispatcher(registry *Registry, timeout time.Duration) *Dispatcher {
	if timeout <= 0 {
		timeout = constants.BOT_TIMEOUT_SECONDS * time.Second
	}
	return &Dispatcher{registry: registry, timeout: timeout}
}

// Registry 返回分发器使用的注册表
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// DispatchMessage 对每个机器人依次调用 OnMessage 与匹配的命令处理函数
// 消息不会交回给发出它的机器人，所有机器人处理完（或超时）后返回
func (d *Dispatcher) DispatchMessage(ctx context.Context, msg *model.Message, hc *Context) {
	if msg == nil {
		return
	}
	name, args, isCommand := ParseCommand(msg.Content)

	d.fanOut(ctx, EventMessage, msg.AuthorID, func(ctx context.Context, b *Bot) error {
		if b.OnMessage != nil {
			if err := b.OnMessage(ctx, msg, hc); err != nil {
				return fmt.Errorf("onMessage: %w", err)
			}
		}
		if !isCommand {
			return nil
		}
		if handler, ok := b.Commands[name]; ok && handler != nil {
			if err := handler(ctx, hc, msg, args); err != nil {
				return fmt.Errorf("command %s: %w", name, err)
			}
		}
		return nil
	})
}

// DispatchJoin 通知所有机器人有新成员加入
func (d *Dispatcher) DispatchJoin(ctx context.Context, member *model.Member, hc *Context) {
	if member == nil {
		return
	}
	d.fanOut(ctx, EventJoin, "", func(ctx context.Context, b *Bot) error {
		if b.OnJoin == nil {
			return nil
		}
		return b.OnJoin(ctx, member, hc)
	})
}

// DispatchReaction 通知其它机器人有新回应，回应者本身不会收到
func (d *Dispatcher) DispatchReaction(ctx context.Context, reaction *model.Reaction, hc *Context) {
	if reaction == nil {
		return
	}
	d.fanOut(ctx, EventReaction, reaction.UserID, func(ctx context.Context, b *Bot) error {
		if b.OnReaction == nil {
			return nil
		}
		return b.OnReaction(ctx, reaction, hc)
	})
}

// fanOut actorID 为事件发起者，与之同 ID 的机器人跳过
func (d *Dispatcher) fanOut(ctx context.Context, event, actorID string, run func(ctx context.Context, b *Bot) error) {
	var wg sync.WaitGroup
	for _, b := range d.registry.Bots() {
		if b.ID == actorID {
			continue
		}
		wg.Add(1)
		go func(b *Bot) {
			defer wg.Done()
			d.runOne(ctx, event, b, run)
		}(b)
	}
	wg.Wait()
}

// runOne 超时后不再等待处理函数，处理函数应遵守 ctx 取消
func (d *Dispatcher) runOne(ctx context.Context, event string, b *Bot, run func(ctx context.Context, b *Bot) error) {
	ctx, cancel := context.WithTimeout(WithBotID(ctx, b.ID), d.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if rec := recover(); rec != nil {
				done <- fmt.Errorf("panic: %v", rec)
			}
		}()
		done <- run(ctx, b)
	}()

	select {
	case err := <-done:
		if err != nil {
			zap.L().Error("bot handler failed",
				zap.String("bot", b.ID), zap.String("event", event), zap.Error(err))
		}
	case <-ctx.Done():
		zap.L().Warn("bot handler timed out",
			zap.String("bot", b.ID), zap.String("event", event), zap.Duration("timeout", d.timeout))
	}
}

// ParseCommand 解析 "!name arg1 arg2"，按空白切分
// 不以命令前缀开头或前缀后为空时 ok=false
func ParseCommand(content string) (name string, args []string, ok bool) {
	if !strings.HasPrefix(content, constants.COMMAND_PREFIX) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, constants.COMMAND_PREFIX))
	if len(fields) == 0 {
		return "", nil, false
	}
	return fields[0], fields[1:], true
}
