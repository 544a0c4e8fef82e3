// Package handler 提供 HTTP 请求处理器
// 本文件定义 Handler 聚合结构和构造函数
package handler

import (
	"kama_community_server/internal/service"
)

// Handlers 聚合所有 Handler 实例，Router 层通过它访问各个 Handler
type Handlers struct {
	Community *CommunityHandler
	Channel   *ChannelHandler
	Message   *MessageHandler
	Member    *MemberHandler
	Role      *RoleHandler
	Invite    *InviteHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Community: NewCommunityHandler(svc.Community),
		Channel:   NewChannelHandler(svc.Channel),
		Message:   NewMessageHandler(svc.Message),
		Member:    NewMemberHandler(svc.Member),
		Role:      NewRoleHandler(svc.Role),
		Invite:    NewInviteHandler(svc.Invite),
	}
}
