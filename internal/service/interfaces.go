// Package service 定义业务层接口
// 本文件定义所有 Service 接口，供 Handler 层调用
// actorID 为当前登录用户，公开操作中可能为空
package service

import (
	"context"

	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
)

// CommunityService 社区业务接口
type CommunityService interface {
	// Create 创建社区，创建者成为所有者和第一个成员
	Create(ctx context.Context, actorID string, req request.CreateCommunityRequest) (*model.Community, error)
	// ListOwned 列出用户拥有的社区
	ListOwned(ctx context.Context, actorID string) ([]model.Community, error)
	Get(ctx context.Context, id string) (*model.Community, error)
	// Update 仅所有者可修改
	Update(ctx context.Context, actorID, id string, req request.UpdateCommunityRequest) (*model.Community, error)
	// Delete 仅所有者可删除，级联删除社区内容
	Delete(ctx context.Context, actorID, id string) error
}

// ChannelService 频道业务接口
type ChannelService interface {
	Create(ctx context.Context, communityID string, req request.CreateChannelRequest) (*model.Channel, error)
	List(ctx context.Context, communityID string) ([]model.Channel, error)
	Get(ctx context.Context, id string) (*model.Channel, error)
	Update(ctx context.Context, id string, req request.UpdateChannelRequest) (*model.Channel, error)
	Delete(ctx context.Context, id string) error
}

// MessageService 消息与回应业务接口
type MessageService interface {
	Send(ctx context.Context, actorID, channelID string, req request.SendMessageRequest) (*model.Message, error)
	List(ctx context.Context, channelID string, req request.ListMessagesRequest) ([]model.Message, error)
	Edit(ctx context.Context, actorID, id string, req request.EditMessageRequest) (*model.Message, error)
	Delete(ctx context.Context, id string) error

	// AddReaction 同一用户对同一消息的同一表情重复添加时返回已有回应
	AddReaction(ctx context.Context, actorID, messageID string, req request.AddReactionRequest) (*model.Reaction, error)
	RemoveReaction(ctx context.Context, actorID, messageID, emoji string) error
	ListReactions(ctx context.Context, messageID string) ([]model.Reaction, error)

	// PostAsBot 以机器人身份发消息
	PostAsBot(ctx context.Context, botID, channelID, content string, replyToID *string) (*model.Message, error)
}

// MemberService 社区成员业务接口
type MemberService interface {
	List(ctx context.Context, communityID string) ([]model.Member, error)
	// Add 用户已是成员时返回已有记录
	Add(ctx context.Context, communityID string, req request.AddMemberRequest) (*model.Member, error)
	Remove(ctx context.Context, communityID, userID string) error
	UpdateRole(ctx context.Context, communityID, userID string, req request.UpdateMemberRoleRequest) (*model.Member, error)
}

// RoleService 角色业务接口
type RoleService interface {
	Create(ctx context.Context, communityID string, req request.CreateRoleRequest) (*model.Role, error)
	List(ctx context.Context, communityID string) ([]model.Role, error)
	Update(ctx context.Context, id string, req request.UpdateRoleRequest) (*model.Role, error)
	Delete(ctx context.Context, id string) error
}

// InviteService 邀请业务接口
type InviteService interface {
	Create(ctx context.Context, communityID string, req request.CreateInviteRequest) (*model.Invite, error)
	ListByCommunity(ctx context.Context, communityID string) ([]model.Invite, error)
	// GetByCode 返回邀请及其所属社区
	GetByCode(ctx context.Context, code string) (*model.Invite, *model.Community, error)
	// Join 校验并消耗邀请，再将调用者加入社区，返回社区 ID
	Join(ctx context.Context, actorID, code string) (string, error)
	Revoke(ctx context.Context, id string) error
}
