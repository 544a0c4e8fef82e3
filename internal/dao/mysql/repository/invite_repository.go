package repository

import (
	"context"
	"time"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/constants"
	"kama_community_server/pkg/errorx"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type inviteRepository struct {
	db *gorm.DB
}

// NewInviteRepository 创建 InviteRepository 实例
func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &inviteRepository{db: db}
}

func (r *inviteRepository) Create(ctx context.Context, invite *model.Invite) error {
	if invite.ID == "" {
		invite.ID = random.NewID(random.PrefixInvite)
	}
	if invite.Code == "" {
		invite.Code = random.InviteCode(constants.INVITE_CODE_LENGTH)
	}
	if err := r.db.WithContext(ctx).Create(invite).Error; err != nil {
		return wrapDBError(err, "创建邀请")
	}
	return nil
}

func (r *inviteRepository) FindByID(ctx context.Context, id string) (*model.Invite, error) {
	return findOne[model.Invite](ctx, r.db, "邀请 id="+id, "id = ?", id)
}

func (r *inviteRepository) FindByCode(ctx context.Context, code string) (*model.Invite, error) {
	return findOne[model.Invite](ctx, r.db, "邀请 code="+code, "code = ?", code)
}

func (r *inviteRepository) FindByCommunityID(ctx context.Context, communityID string) ([]model.Invite, error) {
	var invites []model.Invite
	if err := r.db.WithContext(ctx).Where("community_id = ?", communityID).Order("created_at ASC").Find(&invites).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询邀请 community_id=%s", communityID)
	}
	return invites, nil
}

// Use 使用 UpdateColumn + gorm.Expr 原子自增
// WHERE 中重复次数上限判断，影响行数为 0 说明已被其他请求用尽
func (r *inviteRepository) Use(ctx context.Context, code string, now time.Time) (*model.Invite, error) {
	invite, err := r.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if invite == nil {
		return nil, errorx.ErrInviteNotFound
	}
	if invite.Expired(now) {
		return nil, errorx.ErrInviteExpired
	}
	if invite.Exhausted() {
		return nil, errorx.ErrInviteExhausted
	}

	result := r.db.WithContext(ctx).Model(&model.Invite{}).
		Where("id = ? AND (max_uses IS NULL OR uses < max_uses)", invite.ID).
		UpdateColumn("uses", gorm.Expr("uses + ?", 1))
	if result.Error != nil {
		return nil, wrapDBErrorf(result.Error, "使用邀请 code=%s", code)
	}
	if result.RowsAffected == 0 {
		return nil, errorx.ErrInviteExhausted
	}
	invite.Uses++
	return invite, nil
}

func (r *inviteRepository) Delete(ctx context.Context, id string) error {
	return deleteWhere[model.Invite](ctx, r.db, "邀请 id="+id, "id = ?", id)
}
