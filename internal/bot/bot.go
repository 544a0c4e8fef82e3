// Package bot 进程内机器人框架
// 机器人通过 Registry 注册，由 Dispatcher 在消息、入群、回应事件发生时调用
package bot

import (
	"context"

	"kama_community_server/internal/model"
)

// MessageHandler 处理频道中的每条新消息
type MessageHandler func(ctx context.Context, msg *model.Message, hc *Context) error

// JoinHandler 处理新成员加入社区
type JoinHandler func(ctx context.Context, member *model.Member, hc *Context) error

// ReactionHandler 处理消息上新增的表情回应
type ReactionHandler func(ctx context.Context, reaction *model.Reaction, hc *Context) error

// CommandHandler 处理 "!<name> <args...>" 形式的命令
type CommandHandler func(ctx context.Context, hc *Context, msg *model.Message, args []string) error

// Bot 机器人定义，各处理函数均为可选
type Bot struct {
	ID          string
	Name        string
	Description string

	OnMessage  MessageHandler
	OnJoin     JoinHandler
	OnReaction ReactionHandler
	Commands   map[string]CommandHandler
}

// Context 机器人处理事件时可用的输出能力，绑定到事件所在频道
type Context struct {
	ChannelID string
	// SendMessage 以机器人身份在当前频道发消息
	SendMessage func(ctx context.Context, content string) (*model.Message, error)
	// ReplyTo 以机器人身份回复当前频道中的某条消息
	ReplyTo func(ctx context.Context, messageID string, content string) (*model.Message, error)
}

type botIDKey struct{}

// WithBotID 在 ctx 中记录当前执行的机器人 ID
func WithBotID(ctx context.Context, botID string) context.Context {
	return context.WithValue(ctx, botIDKey{}, botID)
}

// IDFromContext 取出当前执行的机器人 ID，缺省为内置机器人
func IDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(botIDKey{}).(string); ok && id != "" {
		return id
	}
	return SystemBotID
}
