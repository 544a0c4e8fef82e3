package router

import (
	"kama_community_server/internal/service/authz"

	"github.com/gin-gonic/gin"
)

// RegisterChannelRoutes 频道及频道内消息
func (rt *Router) RegisterChannelRoutes(rg *gin.RouterGroup) {
	h := rt.handlers
	g := rg.Group("/channels")
	{
		g.GET("/:id", guard(authz.Channel, authz.Get, h.Channel.Get)...)
		g.PATCH("/:id", guard(authz.Channel, authz.Update, h.Channel.Update)...)
		g.DELETE("/:id", guard(authz.Channel, authz.Delete, h.Channel.Delete)...)

		g.POST("/:id/messages", guard(authz.Message, authz.Create, h.Message.Send)...)
		g.GET("/:id/messages", guard(authz.Message, authz.List, h.Message.List)...)
	}

	roles := rg.Group("/roles")
	{
		roles.PATCH("/:id", guard(authz.Role, authz.Update, h.Role.Update)...)
		roles.DELETE("/:id", guard(authz.Role, authz.Delete, h.Role.Delete)...)
	}
}
