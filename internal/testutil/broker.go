package testutil

import (
	"context"
	"sync"

	"kama_community_server/internal/service/chat"
)

// RecordingBroker 记录发布过的事件，不做消费
type RecordingBroker struct {
	mu     sync.Mutex
	events []chat.Event
}

func (b *RecordingBroker) Publish(_ context.Context, event chat.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
	return nil
}

func (b *RecordingBroker) SetHandler(chat.EventHandler) {}
func (b *RecordingBroker) Start()                       {}
func (b *RecordingBroker) Close()                       {}

// Events 返回已发布事件的副本
func (b *RecordingBroker) Events() []chat.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]chat.Event, len(b.events))
	copy(out, b.events)
	return out
}

// Kinds 返回已发布事件的类型序列
func (b *RecordingBroker) Kinds() []string {
	events := b.Events()
	kinds := make([]string, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}
