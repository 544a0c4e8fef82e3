package router

import (
	"kama_community_server/internal/service/authz"

	"github.com/gin-gonic/gin"
)

// RegisterMessageRoutes 消息编辑删除与表情回应
func (rt *Router) RegisterMessageRoutes(rg *gin.RouterGroup) {
	h := rt.handlers
	g := rg.Group("/messages")
	{
		g.PATCH("/:id", guard(authz.Message, authz.Update, h.Message.Edit)...)
		g.DELETE("/:id", guard(authz.Message, authz.Delete, h.Message.Delete)...)

		g.GET("/:id/reactions", guard(authz.Reaction, authz.List, h.Message.ListReactions)...)
		g.POST("/:id/reactions", guard(authz.Reaction, authz.Create, h.Message.AddReaction)...)
		g.DELETE("/:id/reactions/:emoji", guard(authz.Reaction, authz.Delete, h.Message.RemoveReaction)...)
	}
}
