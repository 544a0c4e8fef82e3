package repository

import (
	"context"

	"kama_community_server/internal/model"
	"kama_community_server/pkg/util/random"

	"gorm.io/gorm"
)

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository 创建 RoleRepository 实例
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	if role.ID == "" {
		role.ID = random.NewID(random.PrefixRole)
	}
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return wrapDBError(err, "创建角色")
	}
	return nil
}

func (r *roleRepository) FindByID(ctx context.Context, id string) (*model.Role, error) {
	return findOne[model.Role](ctx, r.db, "角色 id="+id, "id = ?", id)
}

func (r *roleRepository) FindByCommunityID(ctx context.Context, communityID string) ([]model.Role, error) {
	var roles []model.Role
	if err := r.db.WithContext(ctx).Where("community_id = ?", communityID).Order("created_at ASC").Find(&roles).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询角色 community_id=%s", communityID)
	}
	return roles, nil
}

func (r *roleRepository) Update(ctx context.Context, id string, updates map[string]any) (*model.Role, error) {
	return updateByID[model.Role](ctx, r.db, "Role", id, updates)
}

func (r *roleRepository) Delete(ctx context.Context, id string) error {
	return deleteWhere[model.Role](ctx, r.db, "角色 id="+id, "id = ?", id)
}
