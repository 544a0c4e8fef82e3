package redis

import (
	"context"
	"strconv"
	"time"

	"kama_community_server/internal/config"

	"github.com/redis/go-redis/v9"
)

const (
	cacheWorkerNum  = 15
	cacheBufferSize = 3000
)

// Init 根据配置创建 Redis 客户端并启动缓存 Worker Pool
// 连接失败时返回错误，由调用方决定是否降级为无缓存运行
func Init(conf *config.RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         conf.Host + ":" + strconv.Itoa(conf.Port),
		Password:     conf.Password,
		DB:           conf.Db,
		PoolSize:     50,
		MinIdleConns: cacheWorkerNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return NewRedisCache(client, cacheWorkerNum, cacheBufferSize), nil
}
