// Package member 社区成员业务
// 新成员加入时发布 join 事件
package member

import (
	"context"

	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/internal/service/chat"

	"go.uber.org/zap"
)

type memberService struct {
	repos  *repository.Repositories
	broker chat.MessageBroker
}

// NewMemberService broker 为 nil 时不发布事件
func NewMemberService(repos *repository.Repositories, broker chat.MessageBroker) *memberService {
	return &memberService{repos: repos, broker: broker}
}

func (s *memberService) List(ctx context.Context, communityID string) ([]model.Member, error) {
	members, err := s.repos.Member.FindByCommunityID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if members == nil {
		members = []model.Member{}
	}
	return members, nil
}

func (s *memberService) Add(ctx context.Context, communityID string, req request.AddMemberRequest) (*model.Member, error) {
	m, created, err := s.repos.Member.CreateOrGet(ctx, &model.Member{
		CommunityID: communityID,
		UserID:      req.UserID,
		RoleID:      req.RoleID,
	})
	if err != nil {
		return nil, err
	}
	if created {
		PublishJoin(ctx, s.broker, m)
	}
	return m, nil
}

func (s *memberService) Remove(ctx context.Context, communityID, userID string) error {
	return s.repos.Member.Delete(ctx, communityID, userID)
}

func (s *memberService) UpdateRole(ctx context.Context, communityID, userID string, req request.UpdateMemberRoleRequest) (*model.Member, error) {
	return s.repos.Member.UpdateRole(ctx, communityID, userID, req.RoleID)
}

// PublishJoin 发布入群事件，失败只记录日志
func PublishJoin(ctx context.Context, broker chat.MessageBroker, m *model.Member) {
	if broker == nil {
		return
	}
	if err := broker.Publish(ctx, chat.NewJoinEvent(m)); err != nil {
		zap.L().Warn("publish join event", zap.String("community", m.CommunityID), zap.String("user", m.UserID), zap.Error(err))
	}
}
