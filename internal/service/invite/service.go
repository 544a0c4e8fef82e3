// Package invite 邀请业务：创建、查询、兑换与撤销
package invite

import (
	"context"
	"time"

	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/internal/service/authz"
	"kama_community_server/internal/service/chat"
	"kama_community_server/internal/service/member"
	"kama_community_server/pkg/errorx"
)

type inviteService struct {
	repos  *repository.Repositories
	broker chat.MessageBroker
	now    func() time.Time
}

func NewInviteService(repos *repository.Repositories, broker chat.MessageBroker) *inviteService {
	return &inviteService{repos: repos, broker: broker, now: time.Now}
}

func (s *inviteService) Create(ctx context.Context, communityID string, req request.CreateInviteRequest) (*model.Invite, error) {
	inv := &model.Invite{
		CommunityID: communityID,
		ExpiresAt:   req.ExpiresAt,
		MaxUses:     req.MaxUses,
	}
	if err := s.repos.Invite.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *inviteService) ListByCommunity(ctx context.Context, communityID string) ([]model.Invite, error) {
	invites, err := s.repos.Invite.FindByCommunityID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if invites == nil {
		invites = []model.Invite{}
	}
	return invites, nil
}

// GetByCode 邀请或其社区不存在时返回 not_found
func (s *inviteService) GetByCode(ctx context.Context, code string) (*model.Invite, *model.Community, error) {
	inv, err := s.repos.Invite.FindByCode(ctx, code)
	if err != nil {
		return nil, nil, err
	}
	if inv == nil {
		return nil, nil, errorx.ErrNotFound
	}
	c, err := s.repos.Community.FindByID(ctx, inv.CommunityID)
	if err != nil {
		return nil, nil, err
	}
	if c == nil {
		return nil, nil, errorx.ErrNotFound
	}
	return inv, c, nil
}

// Join 在一个事务内兑换邀请并加入社区
// 调用者已是成员时直接返回社区 ID，不消耗次数
func (s *inviteService) Join(ctx context.Context, actorID, code string) (string, error) {
	if err := authz.Authorize(authz.Invite, authz.Join, actorID, ""); err != nil {
		return "", err
	}
	now := s.now()

	var joined *model.Member
	var communityID string
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		inv, err := tx.Invite.FindByCode(ctx, code)
		if err != nil {
			return err
		}
		if inv == nil {
			return errorx.ErrInviteNotFound
		}
		if inv.Expired(now) {
			return errorx.ErrInviteExpired
		}
		communityID = inv.CommunityID

		existing, err := tx.Member.Find(ctx, inv.CommunityID, actorID)
		if err != nil {
			return err
		}
		if existing != nil {
			return nil
		}

		if _, err := tx.Invite.Use(ctx, code, now); err != nil {
			return err
		}
		m, created, err := tx.Member.CreateOrGet(ctx, &model.Member{CommunityID: inv.CommunityID, UserID: actorID})
		if err != nil {
			return err
		}
		if created {
			joined = m
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	if joined != nil {
		member.PublishJoin(ctx, s.broker, joined)
	}
	return communityID, nil
}

func (s *inviteService) Revoke(ctx context.Context, id string) error {
	return s.repos.Invite.Delete(ctx, id)
}
