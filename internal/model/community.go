// Package model 定义数据库实体模型
// 所有实体使用带类型前缀的字符串主键（见 pkg/util/random），不声明外键
package model

import "time"

// 社区隐私级别
const (
	PrivacyPublic     = "public"
	PrivacyPrivate    = "private"
	PrivacyInviteOnly = "invite-only"
)

// Community 社区
// 创建者即 OwnerID，且创建时自动成为第一个成员
type Community struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	OwnerID     string    `gorm:"column:owner_id;type:varchar(64);index;not null" json:"ownerId"`
	Privacy     string    `gorm:"column:privacy;type:varchar(20);not null;default:public" json:"privacy"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Community) TableName() string {
	return "communities"
}
