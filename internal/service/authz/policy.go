// Package authz 集中定义 (资源, 操作) -> 访问要求 的授权表
// 路由据此挂载认证中间件，Service 据此做所有者校验
package authz

import "kama_community_server/pkg/errorx"

// Requirement 访问要求
type Requirement int

const (
	Public        Requirement = iota // 无需登录
	Authenticated                    // 需要登录
	Owner                            // 需要登录且为资源所有者
)

// Resource 受保护的资源
type Resource string

const (
	Community Resource = "community"
	Channel   Resource = "channel"
	Message   Resource = "message"
	Reaction  Resource = "reaction"
	Member    Resource = "member"
	Role      Resource = "role"
	Invite    Resource = "invite"
)

// Action 对资源的操作
type Action string

const (
	Create Action = "create"
	List   Action = "list"
	Get    Action = "get"
	Update Action = "update"
	Delete Action = "delete"
	Join   Action = "join"
)

type rule struct {
	resource Resource
	action   Action
}

// policy 未列出的组合均为 Public
var policy = map[rule]Requirement{
	{Community, Create}: Authenticated,
	{Community, List}:   Authenticated,
	{Community, Update}: Owner,
	{Community, Delete}: Owner,

	{Message, Create}: Authenticated,
	{Message, Update}: Authenticated,

	{Reaction, Create}: Authenticated,
	{Reaction, Delete}: Authenticated,

	{Invite, Join}: Authenticated,
}

// Lookup 查询 (resource, action) 的访问要求
func Lookup(resource Resource, action Action) Requirement {
	return policy[rule{resource, action}]
}

// NeedsAuth 是否需要已认证的调用者
func (r Requirement) NeedsAuth() bool {
	return r >= Authenticated
}

// Authorize 按授权表校验调用者
// ownerID 仅在要求为 Owner 时使用
func Authorize(resource Resource, action Action, actorID, ownerID string) error {
	req := Lookup(resource, action)
	if req.NeedsAuth() && actorID == "" {
		return errorx.ErrUnauthenticated
	}
	if req == Owner && actorID != ownerID {
		return errorx.ErrForbidden
	}
	return nil
}
