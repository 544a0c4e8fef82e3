package router

import (
	"kama_community_server/internal/service/authz"

	"github.com/gin-gonic/gin"
)

// RegisterCommunityRoutes 社区及其下属的频道、成员、角色、邀请
func (rt *Router) RegisterCommunityRoutes(rg *gin.RouterGroup) {
	h := rt.handlers
	g := rg.Group("/communities")
	{
		// ===== 社区 =====
		g.POST("", guard(authz.Community, authz.Create, h.Community.Create)...)
		g.GET("", guard(authz.Community, authz.List, h.Community.ListOwned)...)
		g.GET("/:id", guard(authz.Community, authz.Get, h.Community.Get)...)
		g.PATCH("/:id", guard(authz.Community, authz.Update, h.Community.Update)...)
		g.DELETE("/:id", guard(authz.Community, authz.Delete, h.Community.Delete)...)

		// ===== 频道 =====
		g.POST("/:id/channels", guard(authz.Channel, authz.Create, h.Channel.Create)...)
		g.GET("/:id/channels", guard(authz.Channel, authz.List, h.Channel.List)...)

		// ===== 成员 =====
		g.GET("/:id/members", guard(authz.Member, authz.List, h.Member.List)...)
		g.POST("/:id/members", guard(authz.Member, authz.Create, h.Member.Add)...)
		g.PATCH("/:id/members/:userId", guard(authz.Member, authz.Update, h.Member.UpdateRole)...)
		g.DELETE("/:id/members/:userId", guard(authz.Member, authz.Delete, h.Member.Remove)...)

		// ===== 角色 =====
		g.POST("/:id/roles", guard(authz.Role, authz.Create, h.Role.Create)...)
		g.GET("/:id/roles", guard(authz.Role, authz.List, h.Role.List)...)

		// ===== 邀请 =====
		g.POST("/:id/invites", guard(authz.Invite, authz.Create, h.Invite.Create)...)
		g.GET("/:id/invites", guard(authz.Invite, authz.List, h.Invite.List)...)
	}
}
