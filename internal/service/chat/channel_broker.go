package chat

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrBrokerClosed 代理已关闭
var ErrBrokerClosed = errors.New("message broker closed")

// ChannelBroker 单机模式：事件经带缓冲的 Go channel 交给单个消费协程
type ChannelBroker struct {
	events  chan Event
	handler EventHandler

	mu      sync.Mutex
	closed  bool
	started bool
	quit    chan struct{}
	done    chan struct{}
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewChannelBroker 创建 ChannelBroker，size 为缓冲区大小
func NewChannelBroker(size int) *ChannelBroker {
	ctx, cancel := context.WithCancel(context.Background())
	return &ChannelBroker{
		events: make(chan Event, size),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
		ctx:    ctx,
		cancel: cancel,
	}
}

func (b *ChannelBroker) SetHandler(handler EventHandler) {
	b.handler = handler
}

// Publish 缓冲区满时阻塞，直到有空位、代理关闭或 ctx 取消
// 发送时不持锁，events 通道也从不关闭
func (b *ChannelBroker) Publish(ctx context.Context, event Event) error {
	b.mu.Lock()
	closed := b.closed
	b.mu.Unlock()
	if closed {
		return ErrBrokerClosed
	}

	select {
	case b.events <- event:
		return nil
	case <-b.quit:
		return ErrBrokerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start 启动消费协程
func (b *ChannelBroker) Start() {
	b.mu.Lock()
	if b.started || b.closed {
		b.mu.Unlock()
		return
	}
	b.started = true
	b.mu.Unlock()

	go func() {
		defer close(b.done)
		for {
			select {
			case event := <-b.events:
				b.handle(event)
			case <-b.quit:
				b.drain()
				return
			}
		}
	}()
}

// drain 处理关闭时缓冲区中已有的事件
func (b *ChannelBroker) drain() {
	for {
		select {
		case event := <-b.events:
			b.handle(event)
		default:
			return
		}
	}
}

func (b *ChannelBroker) handle(event Event) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("chat event handler panic", zap.String("kind", event.Kind), zap.Any("recover", r))
		}
	}()
	if b.handler != nil {
		b.handler.Handle(b.ctx, event)
	}
}

// Close 停止接收新事件，处理完缓冲区中剩余事件后返回
func (b *ChannelBroker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.quit)
	started := b.started
	b.mu.Unlock()

	if started {
		<-b.done
	}
	b.cancel()
}
