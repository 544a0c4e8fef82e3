// Package community 社区业务：创建、查询、所有者修改与删除
// 社区详情和"我拥有的社区"列表走 Redis 读穿缓存
package community

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"kama_community_server/internal/dao/mysql/repository"
	myredis "kama_community_server/internal/dao/redis"
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/model"
	"kama_community_server/internal/service/authz"
	"kama_community_server/pkg/constants"
	"kama_community_server/pkg/errorx"

	"go.uber.org/zap"
)

type communityService struct {
	repos    *repository.Repositories
	cache    myredis.AsyncCacheService
	cacheTTL time.Duration

	// gen 每次失效时递增，读库前取得的 gen 已过期的回填会被丢弃
	gen atomic.Uint64
}

// NewCommunityService 创建社区服务，cache 为 nil 时直接读库
func NewCommunityService(repos *repository.Repositories, cache myredis.AsyncCacheService, cacheTTL time.Duration) *communityService {
	if cacheTTL <= 0 {
		cacheTTL = constants.CACHE_TTL_MINUTES * time.Minute
	}
	return &communityService{repos: repos, cache: cache, cacheTTL: cacheTTL}
}

// Create 在同一事务中创建社区和所有者的成员记录
func (s *communityService) Create(ctx context.Context, actorID string, req request.CreateCommunityRequest) (*model.Community, error) {
	if err := authz.Authorize(authz.Community, authz.Create, actorID, ""); err != nil {
		return nil, err
	}
	c := &model.Community{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     actorID,
		Privacy:     req.Privacy,
	}
	if c.Privacy == "" {
		c.Privacy = model.PrivacyPublic
	}

	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Community.Create(ctx, c); err != nil {
			return err
		}
		_, _, err := tx.Member.CreateOrGet(ctx, &model.Member{CommunityID: c.ID, UserID: actorID})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, myredis.OwnedCommunitiesKey(actorID))
	return c, nil
}

func (s *communityService) ListOwned(ctx context.Context, actorID string) ([]model.Community, error) {
	if err := authz.Authorize(authz.Community, authz.List, actorID, ""); err != nil {
		return nil, err
	}
	key := myredis.OwnedCommunitiesKey(actorID)

	var cached []model.Community
	if s.readCache(ctx, key, &cached) {
		return cached, nil
	}
	gen := s.gen.Load()
	communities, err := s.repos.Community.FindByOwnerID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if communities == nil {
		communities = []model.Community{}
	}
	s.fillCache(key, communities, gen)
	return communities, nil
}

// Get 不存在时返回 not_found
func (s *communityService) Get(ctx context.Context, id string) (*model.Community, error) {
	key := myredis.CommunityKey(id)

	var cached model.Community
	if s.readCache(ctx, key, &cached) {
		return &cached, nil
	}
	gen := s.gen.Load()
	c, err := s.repos.Community.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errorx.ErrNotFound
	}
	s.fillCache(key, c, gen)
	return c, nil
}

// Update 先校验存在与所有权，再修改
func (s *communityService) Update(ctx context.Context, actorID, id string, req request.UpdateCommunityRequest) (*model.Community, error) {
	c, err := s.loadOwned(ctx, authz.Update, actorID, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]any)
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Privacy != nil {
		updates["privacy"] = *req.Privacy
	}
	updated, err := s.repos.Community.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, myredis.CommunityKey(id), myredis.OwnedCommunitiesKey(c.OwnerID))
	return updated, nil
}

func (s *communityService) Delete(ctx context.Context, actorID, id string) error {
	c, err := s.loadOwned(ctx, authz.Delete, actorID, id)
	if err != nil {
		return err
	}
	if err := s.repos.Community.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, myredis.CommunityKey(id), myredis.OwnedCommunitiesKey(c.OwnerID))
	return nil
}

// loadOwned 读库（不走缓存）并按授权表校验所有者
func (s *communityService) loadOwned(ctx context.Context, action authz.Action, actorID, id string) (*model.Community, error) {
	if actorID == "" {
		return nil, errorx.ErrUnauthenticated
	}
	c, err := s.repos.Community.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, errorx.ErrNotFound
	}
	if err := authz.Authorize(authz.Community, action, actorID, c.OwnerID); err != nil {
		return nil, err
	}
	return c, nil
}

// ==================== 缓存辅助 ====================

// readCache 命中并成功解析时返回 true；缓存异常只记录日志
func (s *communityService) readCache(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		zap.L().Warn("community cache get", zap.String("key", key), zap.Error(err))
		return false
	}
	if raw == "" {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		zap.L().Warn("community cache decode", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// fillCache 异步回填，gen 为读库前的代数
// 写入前后各检查一次代数，期间发生过失效则放弃或撤销本次回填
func (s *communityService) fillCache(key string, value any, gen uint64) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	s.cache.SubmitTask(func() {
		if s.gen.Load() != gen {
			return
		}
		ctx := context.Background()
		if err := s.cache.Set(ctx, key, string(data), s.cacheTTL); err != nil {
			zap.L().Warn("community cache set", zap.String("key", key), zap.Error(err))
			return
		}
		if s.gen.Load() != gen {
			if err := s.cache.Delete(ctx, key); err != nil {
				zap.L().Warn("community cache revoke stale fill", zap.String("key", key), zap.Error(err))
			}
		}
	})
}

// invalidate 写操作后同步删除缓存
func (s *communityService) invalidate(ctx context.Context, keys ...string) {
	s.gen.Add(1)
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		zap.L().Warn("community cache invalidate", zap.Strings("keys", keys), zap.Error(err))
	}
}
