package repository

import (
	"context"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository 创建 ReactionRepository 实例
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// CreateOrGet 依赖 (message_id, user_id, emoji) 唯一索引
// 插入冲突时回查已有记录
func (r *reactionRepository) CreateOrGet(ctx context.Context, reaction *model.Reaction) (*model.Reaction, bool, error) {
	existing, err := r.Find(ctx, reaction.MessageID, reaction.UserID, reaction.Emoji)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if reaction.ID == "" {
		reaction.ID = random.NewID(random.PrefixReaction)
	}
	createErr := r.db.WithContext(ctx).Create(reaction).Error
	if createErr == nil {
		return reaction, true, nil
	}

	existing, err = r.Find(ctx, reaction.MessageID, reaction.UserID, reaction.Emoji)
	if err == nil && existing != nil {
		return existing, false, nil
	}
	return nil, false, wrapDBError(createErr, "创建回应")
}

func (r *reactionRepository) Find(ctx context.Context, messageID, userID, emoji string) (*model.Reaction, error) {
	return findOne[model.Reaction](ctx, r.db, "回应",
		"message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji)
}

func (r *reactionRepository) FindByMessageID(ctx context.Context, messageID string) ([]model.Reaction, error) {
	var reactions []model.Reaction
	if err := r.db.WithContext(ctx).Where("message_id = ?", messageID).Order("created_at ASC").Find(&reactions).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询回应 message_id=%s", messageID)
	}
	return reactions, nil
}

func (r *reactionRepository) Delete(ctx context.Context, messageID, userID, emoji string) error {
	return deleteWhere[model.Reaction](ctx, r.db, "回应",
		"message_id = ? AND user_id = ? AND emoji = ?", messageID, userID, emoji)
}
