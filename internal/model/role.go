package model

import (
	"time"

	"gorm.io/datatypes"
)

// Permissions 权限名到开关的映射，以 JSON 存储
// 目前只做存储，不参与鉴权
type Permissions = datatypes.JSONType[map[string]bool]

// NewPermissions 包装权限映射，nil 视为空映射
func NewPermissions(p map[string]bool) Permissions {
	if p == nil {
		p = map[string]bool{}
	}
	return datatypes.NewJSONType(p)
}

// Role 社区角色
type Role struct {
	ID          string      `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	CommunityID string      `gorm:"column:community_id;type:varchar(64);index;not null" json:"communityId"`
	Name        string      `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Color       string      `gorm:"column:color;type:varchar(20);not null;default:'#7c3aed'" json:"color"`
	Permissions Permissions `gorm:"column:permissions" json:"permissions"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Role) TableName() string {
	return "roles"
}
