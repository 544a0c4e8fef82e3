// Package message 消息与表情回应业务
// 新消息和新回应会发布到事件管道，供机器人消费
package message

import (
	"context"
	"time"

	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/internal/service/authz"
	"kama_community_server/internal/service/chat"
	"kama_community_server/pkg/constants"

	"go.uber.org/zap"
)

// Options 消息服务可选项
type Options struct {
	Sanitizer    Sanitizer // 为 nil 时内容原样保存
	DefaultLimit int
	MaxLimit     int
}

type messageService struct {
	repos        *repository.Repositories
	broker       chat.MessageBroker
	sanitizer    Sanitizer
	defaultLimit int
	maxLimit     int
	now          func() time.Time
}

// NewMessageService broker 为 nil 时不发布事件
func NewMessageService(repos *repository.Repositories, broker chat.MessageBroker, opts Options) *messageService {
	s := &messageService{
		repos:        repos,
		broker:       broker,
		sanitizer:    opts.Sanitizer,
		defaultLimit: opts.DefaultLimit,
		maxLimit:     opts.MaxLimit,
		now:          time.Now,
	}
	if s.defaultLimit <= 0 {
		s.defaultLimit = constants.DEFAULT_MESSAGE_LIMIT
	}
	if s.maxLimit <= 0 {
		s.maxLimit = constants.MAX_MESSAGE_LIMIT
	}
	return s
}

// Send content 缺省为空字符串
func (s *messageService) Send(ctx context.Context, actorID, channelID string, req request.SendMessageRequest) (*model.Message, error) {
	if err := authz.Authorize(authz.Message, authz.Create, actorID, ""); err != nil {
		return nil, err
	}
	content := ""
	if req.Content != nil {
		content = *req.Content
	}
	return s.create(ctx, actorID, channelID, content, req.ReplyToID)
}

func (s *messageService) PostAsBot(ctx context.Context, botID, channelID, content string, replyToID *string) (*model.Message, error) {
	return s.create(ctx, botID, channelID, content, replyToID)
}

func (s *messageService) create(ctx context.Context, authorID, channelID, content string, replyToID *string) (*model.Message, error) {
	msg := &model.Message{
		ChannelID: channelID,
		AuthorID:  authorID,
		Content:   s.clean(content),
		ReplyToID: replyToID,
	}
	if err := s.repos.Message.Create(ctx, msg); err != nil {
		return nil, err
	}
	s.publish(ctx, chat.NewMessageEvent(msg))
	return msg, nil
}

// List limit 缺省为默认值，超过上限时截断
func (s *messageService) List(ctx context.Context, channelID string, req request.ListMessagesRequest) ([]model.Message, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if limit > s.maxLimit {
		limit = s.maxLimit
	}
	messages, err := s.repos.Message.FindByChannelID(ctx, channelID, req.Before, limit)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []model.Message{}
	}
	return messages, nil
}

// Edit 不校验作者，只要求已登录
func (s *messageService) Edit(ctx context.Context, actorID, id string, req request.EditMessageRequest) (*model.Message, error) {
	if err := authz.Authorize(authz.Message, authz.Update, actorID, ""); err != nil {
		return nil, err
	}
	content := ""
	if req.Content != nil {
		content = *req.Content
	}
	return s.repos.Message.Update(ctx, id, map[string]any{
		"content":   s.clean(content),
		"edited_at": s.now().UTC(),
	})
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.repos.Message.Delete(ctx, id)
}

func (s *messageService) AddReaction(ctx context.Context, actorID, messageID string, req request.AddReactionRequest) (*model.Reaction, error) {
	if err := authz.Authorize(authz.Reaction, authz.Create, actorID, ""); err != nil {
		return nil, err
	}
	reaction, created, err := s.repos.Reaction.CreateOrGet(ctx, &model.Reaction{
		MessageID: messageID,
		UserID:    actorID,
		Emoji:     req.Emoji,
	})
	if err != nil {
		return nil, err
	}
	if created {
		s.publish(ctx, chat.NewReactionEvent(reaction))
	}
	return reaction, nil
}

func (s *messageService) RemoveReaction(ctx context.Context, actorID, messageID, emoji string) error {
	if err := authz.Authorize(authz.Reaction, authz.Delete, actorID, ""); err != nil {
		return err
	}
	return s.repos.Reaction.Delete(ctx, messageID, actorID, emoji)
}

func (s *messageService) ListReactions(ctx context.Context, messageID string) ([]model.Reaction, error) {
	reactions, err := s.repos.Reaction.FindByMessageID(ctx, messageID)
	if err != nil {
		return nil, err
	}
	if reactions == nil {
		reactions = []model.Reaction{}
	}
	return reactions, nil
}

func (s *messageService) clean(content string) string {
	if s.sanitizer == nil || content == "" {
		return content
	}
	return s.sanitizer.Sanitize(content)
}

// publish 事件发布失败不影响消息写入
func (s *messageService) publish(ctx context.Context, event chat.Event) {
	if s.broker == nil {
		return
	}
	if err := s.broker.Publish(ctx, event); err != nil {
		zap.L().Warn("publish chat event", zap.String("kind", event.Kind), zap.String("key", event.Key()), zap.Error(err))
	}
}
