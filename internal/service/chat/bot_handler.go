package chat

import (
	"context"

	"kama_community_server/internal/bot"
	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/model"

	"go.uber.org/zap"
)

// Poster 以机器人身份发送消息，由 message service 实现
type Poster interface {
	PostAsBot(ctx context.Context, botID, channelID, content string, replyToID *string) (*model.Message, error)
}

// BotEventHandler 将聊天事件交给机器人分发器
// 为每个事件构造绑定到来源频道的 bot.Context
type BotEventHandler struct {
	dispatcher *bot.Dispatcher
	poster     Poster
	channels   repository.ChannelRepository
	messages   repository.MessageRepository
}

// NewBotEventHandler 创建 BotEventHandler
func NewBotEventHandler(dispatcher *bot.Dispatcher, poster Poster, repos *repository.Repositories) *BotEventHandler {
	return &BotEventHandler{
		dispatcher: dispatcher,
		poster:     poster,
		channels:   repos.Channel,
		messages:   repos.Message,
	}
}

// Handle 实现 EventHandler
func (h *BotEventHandler) Handle(ctx context.Context, event Event) {
	switch event.Kind {
	case bot.EventMessage:
		if event.Message == nil {
			return
		}
		h.dispatcher.DispatchMessage(ctx, event.Message, h.contextFor(event.Message.ChannelID))

	case bot.EventJoin:
		if event.Member == nil {
			return
		}
		// 入群事件绑定到社区的第一个频道，社区没有频道时跳过
		channel, err := h.channels.FirstByCommunityID(ctx, event.Member.CommunityID)
		if err != nil {
			zap.L().Error("resolve join channel", zap.String("community", event.Member.CommunityID), zap.Error(err))
			return
		}
		if channel == nil {
			return
		}
		h.dispatcher.DispatchJoin(ctx, event.Member, h.contextFor(channel.ID))

	case bot.EventReaction:
		if event.Reaction == nil {
			return
		}
		msg, err := h.messages.FindByID(ctx, event.Reaction.MessageID)
		if err != nil {
			zap.L().Error("resolve reaction message", zap.String("message", event.Reaction.MessageID), zap.Error(err))
			return
		}
		if msg == nil {
			return
		}
		h.dispatcher.DispatchReaction(ctx, event.Reaction, h.contextFor(msg.ChannelID))

	default:
		zap.L().Warn("unknown chat event", zap.String("kind", event.Kind))
	}
}

// contextFor 作者取自分发器放入 ctx 的机器人 ID
func (h *BotEventHandler) contextFor(channelID string) *bot.Context {
	return &bot.Context{
		ChannelID: channelID,
		SendMessage: func(ctx context.Context, content string) (*model.Message, error) {
			return h.poster.PostAsBot(ctx, bot.IDFromContext(ctx), channelID, content, nil)
		},
		ReplyTo: func(ctx context.Context, messageID string, content string) (*model.Message, error) {
			return h.poster.PostAsBot(ctx, bot.IDFromContext(ctx), channelID, content, &messageID)
		},
	}
}
