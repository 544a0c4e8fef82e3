// Package https_server 提供 HTTP/HTTPS 服务器的初始化和配置
// 负责创建 Gin 引擎实例并配置中间件和路由
package https_server

import (
	"kama_community_server/internal/config"
	"kama_community_server/internal/handler"
	"kama_community_server/internal/infrastructure/logger"
	"kama_community_server/internal/infrastructure/middleware"
	"kama_community_server/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Init 创建 Gin 引擎并注册中间件与业务路由
// 配置顺序：日志与恢复 -> CORS -> 可选的 TLS 重定向 -> 业务路由
func Init(conf *config.Config, handlers *handler.Handlers) *gin.Engine {
	engine := gin.New()

	// 路径参数按原始编码匹配再解码，/reactions/%F0%9F%91%8D 这类 emoji 才能正确取到
	engine.UseRawPath = true
	engine.UnescapePathValues = true

	engine.Use(logger.GinLogger())
	engine.Use(logger.GinRecovery(true))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{"*"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	engine.Use(cors.New(corsConfig))

	// 由 Nginx 处理 SSL 时保持关闭
	if conf.TLSRedirect {
		engine.Use(middleware.TlsHandler(conf.MainConfig.Host, conf.MainConfig.Port))
	}

	rt := router.NewRouter(handlers)
	rt.RegisterRoutes(engine, conf.APIPrefix)

	return engine
}
