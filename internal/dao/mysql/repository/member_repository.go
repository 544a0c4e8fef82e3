package repository

import (
	"context"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/errorx"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository 创建 MemberRepository 实例
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// CreateOrGet 依赖 (community_id, user_id) 唯一索引
func (r *memberRepository) CreateOrGet(ctx context.Context, member *model.Member) (*model.Member, bool, error) {
	existing, err := r.Find(ctx, member.CommunityID, member.UserID)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	if member.ID == "" {
		member.ID = random.NewID(random.PrefixMember)
	}
	createErr := r.db.WithContext(ctx).Create(member).Error
	if createErr == nil {
		return member, true, nil
	}

	existing, err = r.Find(ctx, member.CommunityID, member.UserID)
	if err == nil && existing != nil {
		return existing, false, nil
	}
	return nil, false, wrapDBError(createErr, "添加成员")
}

func (r *memberRepository) Find(ctx context.Context, communityID, userID string) (*model.Member, error) {
	return findOne[model.Member](ctx, r.db, "成员",
		"community_id = ? AND user_id = ?", communityID, userID)
}

func (r *memberRepository) FindByCommunityID(ctx context.Context, communityID string) ([]model.Member, error) {
	var members []model.Member
	if err := r.db.WithContext(ctx).Where("community_id = ?", communityID).Order("joined_at ASC").Find(&members).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询成员 community_id=%s", communityID)
	}
	return members, nil
}

func (r *memberRepository) UpdateRole(ctx context.Context, communityID, userID string, roleID *string) (*model.Member, error) {
	err := r.db.WithContext(ctx).Model(&model.Member{}).
		Where("community_id = ? AND user_id = ?", communityID, userID).
		Update("role_id", roleID).Error
	if err != nil {
		return nil, wrapDBErrorf(err, "更新成员角色 community_id=%s user_id=%s", communityID, userID)
	}
	member, err := r.Find(ctx, communityID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, errorx.New(errorx.CodeNotFound, "Member not found")
	}
	return member, nil
}

func (r *memberRepository) Delete(ctx context.Context, communityID, userID string) error {
	return deleteWhere[model.Member](ctx, r.db, "成员",
		"community_id = ? AND user_id = ?", communityID, userID)
}
