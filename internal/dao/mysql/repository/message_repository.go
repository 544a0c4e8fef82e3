package repository

import (
	"context"
	"time"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository 创建 MessageRepository 实例
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	if message.ID == "" {
		message.ID = random.NewID(random.PrefixMessage)
	}
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return wrapDBError(err, "创建消息")
	}
	return nil
}

func (r *messageRepository) FindByID(ctx context.Context, id string) (*model.Message, error) {
	return findOne[model.Message](ctx, r.db, "消息 id="+id, "id = ?", id)
}

// FindByChannelID 先按时间倒序取 limit 条，再反转为升序
func (r *messageRepository) FindByChannelID(ctx context.Context, channelID string, before *time.Time, limit int) ([]model.Message, error) {
	query := r.db.WithContext(ctx).Where("channel_id = ?", channelID)
	if before != nil {
		query = query.Where("created_at < ?", *before)
	}

	var messages []model.Message
	if err := query.Order("created_at DESC").Order("id DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询消息 channel_id=%s", channelID)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *messageRepository) Update(ctx context.Context, id string, updates map[string]any) (*model.Message, error) {
	return updateByID[model.Message](ctx, r.db, "Message", id, updates)
}

// Delete 同时删除该消息上的回应
func (r *messageRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("message_id = ?", id).Delete(&model.Reaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Message{}).Error
	})
	return wrapDBErrorf(err, "删除消息 id=%s", id)
}
