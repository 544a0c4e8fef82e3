// Package repository 提供数据访问层的具体实现
// 本文件实现 CommunityRepository 接口
package repository

import (
	"context"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type communityRepository struct {
	db *gorm.DB
}

// NewCommunityRepository 创建 CommunityRepository 实例
func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(ctx context.Context, community *model.Community) error {
	if community.ID == "" {
		community.ID = random.NewID(random.PrefixCommunity)
	}
	if err := r.db.WithContext(ctx).Create(community).Error; err != nil {
		return wrapDBError(err, "创建社区")
	}
	return nil
}

func (r *communityRepository) FindByID(ctx context.Context, id string) (*model.Community, error) {
	return findOne[model.Community](ctx, r.db, "社区 id="+id, "id = ?", id)
}

func (r *communityRepository) FindByOwnerID(ctx context.Context, ownerID string) ([]model.Community, error) {
	var communities []model.Community
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&communities).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询社区 owner_id=%s", ownerID)
	}
	return communities, nil
}

func (r *communityRepository) Update(ctx context.Context, id string, updates map[string]any) (*model.Community, error) {
	return updateByID[model.Community](ctx, r.db, "Community", id, updates)
}

// Delete 在一个事务内按 回应 -> 消息 -> 频道 -> 成员/角色/邀请 -> 社区 的顺序删除
func (r *communityRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		channelIDs := tx.Model(&model.Channel{}).Select("id").Where("community_id = ?", id)
		if err := deleteChannelContent(tx, "channel_id IN (?)", channelIDs); err != nil {
			return err
		}
		for _, m := range []any{&model.Channel{}, &model.Member{}, &model.Role{}, &model.Invite{}} {
			if err := tx.Where("community_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", id).Delete(&model.Community{}).Error
	})
	return wrapDBErrorf(err, "删除社区 id=%s", id)
}

// deleteChannelContent 删除满足条件的频道下的回应和消息
// cond 作用于 messages 表，如 "channel_id = ?"
func deleteChannelContent(tx *gorm.DB, cond string, args ...any) error {
	messageIDs := tx.Model(&model.Message{}).Select("id").Where(cond, args...)
	if err := tx.Where("message_id IN (?)", messageIDs).Delete(&model.Reaction{}).Error; err != nil {
		return err
	}
	return tx.Where(cond, args...).Delete(&model.Message{}).Error
}
