// Package service 提供业务逻辑层
// 本文件实现 Service 层的依赖注入和聚合
package service

import (
	"time"

	"kama_community_server/internal/dao/mysql/repository"
	myredis "kama_community_server/internal/dao/redis"
	"kama_community_server/internal/service/channel"
	"kama_community_server/internal/service/chat"
	"kama_community_server/internal/service/community"
	"kama_community_server/internal/service/invite"
	"kama_community_server/internal/service/member"
	"kama_community_server/internal/service/message"
	"kama_community_server/internal/service/role"
)

// Services 聚合所有 Service 实例
// 作为依赖注入的入口，Handler 层通过它访问各个 Service
type Services struct {
	Community CommunityService
	Channel   ChannelService
	Message   MessageService
	Member    MemberService
	Role      RoleService
	Invite    InviteService
}

// Deps Service 层的外部依赖，Cache 与 Broker 可以为 nil
type Deps struct {
	Repos    *repository.Repositories
	Cache    myredis.AsyncCacheService
	CacheTTL time.Duration
	Broker   chat.MessageBroker
	Message  message.Options
}

// NewServices 创建并注入所有 Service 实例
func NewServices(deps Deps) *Services {
	repos := deps.Repos
	return &Services{
		Community: community.NewCommunityService(repos, deps.Cache, deps.CacheTTL),
		Channel:   channel.NewChannelService(repos),
		Message:   message.NewMessageService(repos, deps.Broker, deps.Message),
		Member:    member.NewMemberService(repos, deps.Broker),
		Role:      role.NewRoleService(repos),
		Invite:    invite.NewInviteService(repos, deps.Broker),
	}
}
