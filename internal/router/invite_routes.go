package router

import (
	"kama_community_server/internal/service/authz"

	"github.com/gin-gonic/gin"
)

// RegisterInviteRoutes 邀请码查询、兑换与撤销
// GET 与 join 使用邀请码，DELETE 使用邀请 ID
func (rt *Router) RegisterInviteRoutes(rg *gin.RouterGroup) {
	h := rt.handlers
	g := rg.Group("/invites")
	{
		g.GET("/:code", guard(authz.Invite, authz.Get, h.Invite.Get)...)
		g.POST("/:code/join", guard(authz.Invite, authz.Join, h.Invite.Join)...)
		g.DELETE("/:id", guard(authz.Invite, authz.Delete, h.Invite.Revoke)...)
	}
}
