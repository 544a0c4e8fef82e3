// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，认证中间件由授权表决定
package router

import (
	"kama_community_server/internal/handler"
	"kama_community_server/internal/infrastructure/middleware"
	"kama_community_server/internal/service/authz"

	"github.com/gin-gonic/gin"
)

// Router 路由管理器，持有 Handler 聚合
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 在 prefix（如 /api/chat）下注册所有业务路由
func (rt *Router) RegisterRoutes(r *gin.Engine, prefix string) {
	api := r.Group(prefix)

	rt.RegisterCommunityRoutes(api)
	rt.RegisterChannelRoutes(api)
	rt.RegisterMessageRoutes(api)
	rt.RegisterInviteRoutes(api)
}

// guard 按授权表在 handler 前挂载 JWTAuth
// Owner 校验需要先读出资源，留给 Service 层
func guard(resource authz.Resource, action authz.Action, h gin.HandlerFunc) []gin.HandlerFunc {
	if authz.Lookup(resource, action).NeedsAuth() {
		return []gin.HandlerFunc{middleware.JWTAuth(), h}
	}
	return []gin.HandlerFunc{h}
}
