// Package role 社区角色业务，权限映射只做存储
package role

import (
	"context"

	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/pkg/constants"
)

type roleService struct {
	repos *repository.Repositories
}

func NewRoleService(repos *repository.Repositories) *roleService {
	return &roleService{repos: repos}
}

func (s *roleService) Create(ctx context.Context, communityID string, req request.CreateRoleRequest) (*model.Role, error) {
	role := &model.Role{
		CommunityID: communityID,
		Name:        req.Name,
		Color:       req.Color,
		Permissions: model.NewPermissions(req.Permissions),
	}
	if role.Color == "" {
		role.Color = constants.DEFAULT_ROLE_COLOR
	}
	if err := s.repos.Role.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *roleService) List(ctx context.Context, communityID string) ([]model.Role, error) {
	roles, err := s.repos.Role.FindByCommunityID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if roles == nil {
		roles = []model.Role{}
	}
	return roles, nil
}

func (s *roleService) Update(ctx context.Context, id string, req request.UpdateRoleRequest) (*model.Role, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Color != nil {
		updates["color"] = *req.Color
	}
	if req.Permissions != nil {
		updates["permissions"] = model.NewPermissions(req.Permissions)
	}
	return s.repos.Role.Update(ctx, id, updates)
}

func (s *roleService) Delete(ctx context.Context, id string) error {
	return s.repos.Role.Delete(ctx, id)
}
