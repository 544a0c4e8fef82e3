// Package repository 定义数据访问层接口和聚合结构
// 采用 Repository 模式将数据访问逻辑与业务逻辑分离
// 所有 Repository 接口在此文件定义，具体实现在各自的文件中
//
// 约定：
//   - 单行读取在记录不存在时返回 (nil, nil)
//   - Create 在 ID 为空时分配带前缀的 ID
//   - Delete 不检查记录是否存在
package repository

import (
	"context"
	"time"

	"kama_community_server/internal/model"

	"gorm.io/gorm"
)

// ==================== Repository 接口定义 ====================

// CommunityRepository 社区数据访问接口
type CommunityRepository interface {
	Create(ctx context.Context, community *model.Community) error
	FindByID(ctx context.Context, id string) (*model.Community, error)
	// FindByOwnerID 查询用户拥有的社区（不含仅加入的社区）
	FindByOwnerID(ctx context.Context, ownerID string) ([]model.Community, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Community, error)
	// Delete 级联删除社区及其频道、消息、回应、成员、角色、邀请
	Delete(ctx context.Context, id string) error
}

// ChannelRepository 频道数据访问接口
type ChannelRepository interface {
	Create(ctx context.Context, channel *model.Channel) error
	FindByID(ctx context.Context, id string) (*model.Channel, error)
	// FindByCommunityID 按 position 升序返回
	FindByCommunityID(ctx context.Context, communityID string) ([]model.Channel, error)
	// FirstByCommunityID 返回 position 最小的频道，没有频道时返回 nil
	FirstByCommunityID(ctx context.Context, communityID string) (*model.Channel, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Channel, error)
	// Delete 同时删除频道内的消息与回应
	Delete(ctx context.Context, id string) error
}

// MessageRepository 消息数据访问接口
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	FindByID(ctx context.Context, id string) (*model.Message, error)
	// FindByChannelID 返回 before 之前（不含）最新的 limit 条消息，按 created_at 升序
	// before 为 nil 时从最新消息开始
	FindByChannelID(ctx context.Context, channelID string, before *time.Time, limit int) ([]model.Message, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Message, error)
	Delete(ctx context.Context, id string) error
}

// ReactionRepository 表情回应数据访问接口
type ReactionRepository interface {
	// CreateOrGet 已存在相同 (message, user, emoji) 时返回已有记录，created=false
	CreateOrGet(ctx context.Context, reaction *model.Reaction) (row *model.Reaction, created bool, err error)
	Find(ctx context.Context, messageID, userID, emoji string) (*model.Reaction, error)
	FindByMessageID(ctx context.Context, messageID string) ([]model.Reaction, error)
	Delete(ctx context.Context, messageID, userID, emoji string) error
}

// MemberRepository 社区成员数据访问接口
type MemberRepository interface {
	// CreateOrGet 用户已是成员时返回已有记录，created=false
	CreateOrGet(ctx context.Context, member *model.Member) (row *model.Member, created bool, err error)
	Find(ctx context.Context, communityID, userID string) (*model.Member, error)
	FindByCommunityID(ctx context.Context, communityID string) ([]model.Member, error)
	UpdateRole(ctx context.Context, communityID, userID string, roleID *string) (*model.Member, error)
	Delete(ctx context.Context, communityID, userID string) error
}

// RoleRepository 角色数据访问接口
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	FindByID(ctx context.Context, id string) (*model.Role, error)
	FindByCommunityID(ctx context.Context, communityID string) ([]model.Role, error)
	Update(ctx context.Context, id string, updates map[string]any) (*model.Role, error)
	Delete(ctx context.Context, id string) error
}

// InviteRepository 邀请数据访问接口
type InviteRepository interface {
	Create(ctx context.Context, invite *model.Invite) error
	FindByID(ctx context.Context, id string) (*model.Invite, error)
	FindByCode(ctx context.Context, code string) (*model.Invite, error)
	FindByCommunityID(ctx context.Context, communityID string) ([]model.Invite, error)
	// Use 校验并消耗一次邀请，依次检查：不存在、已过期、已用尽
	// 次数自增带条件执行，并发兑换不会超过 MaxUses
	Use(ctx context.Context, code string, now time.Time) (*model.Invite, error)
	Delete(ctx context.Context, id string) error
}

// ==================== Repository 聚合 ====================

// Repositories 聚合所有 Repository 实例
// 作为依赖注入的入口，Service 层通过此结构访问数据层
type Repositories struct {
	db        *gorm.DB
	Community CommunityRepository
	Channel   ChannelRepository
	Message   MessageRepository
	Reaction  ReactionRepository
	Member    MemberRepository
	Role      RoleRepository
	Invite    InviteRepository
}

// NewRepositories 创建所有 Repository 实例
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:        db,
		Community: NewCommunityRepository(db),
		Channel:   NewChannelRepository(db),
		Message:   NewMessageRepository(db),
		Reaction:  NewReactionRepository(db),
		Member:    NewMemberRepository(db),
		Role:      NewRoleRepository(db),
		Invite:    NewInviteRepository(db),
	}
}

// Transaction 在数据库事务中执行函数
// 事务内的所有操作要么全部成功，要么全部回滚
func (r *Repositories) Transaction(ctx context.Context, fn func(txRepos *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}
