package repository

import (
	"context"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository 创建 ChannelRepository 实例
func NewChannelRepository(db *gorm.DB) ChannelRepository {
	return &channelRepository{db: db}
}

func (r *channelRepository) Create(ctx context.Context, channel *model.Channel) error {
	if channel.ID == "" {
		channel.ID = random.NewID(random.PrefixChannel)
	}
	if err := r.db.WithContext(ctx).Create(channel).Error; err != nil {
		return wrapDBError(err, "创建频道")
	}
	return nil
}

func (r *channelRepository) FindByID(ctx context.Context, id string) (*model.Channel, error) {
	return findOne[model.Channel](ctx, r.db, "频道 id="+id, "id = ?", id)
}

func (r *channelRepository) FindByCommunityID(ctx context.Context, communityID string) ([]model.Channel, error) {
	var channels []model.Channel
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("position ASC").Order("created_at ASC").
		Find(&channels).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询频道 community_id=%s", communityID)
	}
	return channels, nil
}

func (r *channelRepository) FirstByCommunityID(ctx context.Context, communityID string) (*model.Channel, error) {
	var channels []model.Channel
	err := r.db.WithContext(ctx).
		Where("community_id = ?", communityID).
		Order("position ASC").Order("created_at ASC").
		Limit(1).Find(&channels).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "查询首个频道 community_id=%s", communityID)
	}
	if len(channels) == 0 {
		return nil, nil
	}
	return &channels[0], nil
}

func (r *channelRepository) Update(ctx context.Context, id string, updates map[string]any) (*model.Channel, error) {
	return updateByID[model.Channel](ctx, r.db, "Channel", id, updates)
}

func (r *channelRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := deleteChannelContent(tx, "channel_id = ?", id); err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Channel{}).Error
	})
	return wrapDBErrorf(err, "删除频道 id=%s", id)
}
