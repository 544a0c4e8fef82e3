// Package channel 频道业务
package channel

import (
	"context"

	"kama_community_server/internal/dao/mysql/repository"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/pkg/errorx"
)

type channelService struct {
	repos *repository.Repositories
}

func NewChannelService(repos *repository.Repositories) *channelService {
	return &channelService{repos: repos}
}

func (s *channelService) Create(ctx context.Context, communityID string, req request.CreateChannelRequest) (*model.Channel, error) {
	ch := &model.Channel{
		CommunityID: communityID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Type:        req.Type,
		Position:    req.Position,
	}
	if ch.Type == "" {
		ch.Type = model.ChannelTypeText
	}
	if err := s.repos.Channel.Create(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

func (s *channelService) List(ctx context.Context, communityID string) ([]model.Channel, error) {
	channels, err := s.repos.Channel.FindByCommunityID(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if channels == nil {
		channels = []model.Channel{}
	}
	return channels, nil
}

func (s *channelService) Get(ctx context.Context, id string) (*model.Channel, error) {
	ch, err := s.repos.Channel.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ch == nil {
		return nil, errorx.ErrNotFound
	}
	return ch, nil
}

func (s *channelService) Update(ctx context.Context, id string, req request.UpdateChannelRequest) (*model.Channel, error) {
	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	return s.repos.Channel.Update(ctx, id, updates)
}

func (s *channelService) Delete(ctx context.Context, id string) error {
	return s.repos.Channel.Delete(ctx, id)
}
