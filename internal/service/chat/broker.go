// Package chat 聊天事件管道
// 消息、入群、回应事件由业务层发布到 MessageBroker，
// 消费端交给 EventHandler 转换为机器人分发
package chat

import (
	"context"

	"kama_community_server/internal/bot"
	"kama_community_server/internal/model"
)

// Event 聊天事件，Kind 决定哪个载荷字段有效
type Event struct {
	Kind     string          `json:"kind"`
	Message  *model.Message  `json:"message,omitempty"`
	Member   *model.Member   `json:"member,omitempty"`
	Reaction *model.Reaction `json:"reaction,omitempty"`
}

// NewMessageEvent 新消息事件
func NewMessageEvent(msg *model.Message) Event {
	return Event{Kind: bot.EventMessage, Message: msg}
}

// NewJoinEvent 新成员事件
func NewJoinEvent(member *model.Member) Event {
	return Event{Kind: bot.EventJoin, Member: member}
}

// NewReactionEvent 新回应事件
func NewReactionEvent(reaction *model.Reaction) Event {
	return Event{Kind: bot.EventReaction, Reaction: reaction}
}

// Key 分区键：消息按频道，成员按社区，回应按消息
func (e Event) Key() string {
	switch {
	case e.Message != nil:
		return e.Message.ChannelID
	case e.Member != nil:
		return e.Member.CommunityID
	case e.Reaction != nil:
		return e.Reaction.MessageID
	}
	return ""
}

// MessageBroker 事件代理接口
// 支持两种实现：ChannelBroker (单机), KafkaBroker (分布式)
type MessageBroker interface {
	// Publish 发布事件，不等待消费
	Publish(ctx context.Context, event Event) error
	// SetHandler 注入消费端处理器，须在 Start 之前调用
	SetHandler(handler EventHandler)
	// Start 启动消费循环（非阻塞）
	Start()
	// Close 停止消费并释放资源
	Close()
}

// EventHandler 事件消费端
type EventHandler interface {
	Handle(ctx context.Context, event Event)
}
