package model

import "time"

// Invite 社区邀请
// Code 是对外分享的短码，与 ID 相互独立；MaxUses 为空表示不限次数
type Invite struct {
	ID          string     `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	CommunityID string     `gorm:"column:community_id;type:varchar(64);index;not null" json:"communityId"`
	Code        string     `gorm:"column:code;type:varchar(32);uniqueIndex;not null" json:"code"`
	ExpiresAt   *time.Time `gorm:"column:expires_at" json:"expiresAt"`
	MaxUses     *int       `gorm:"column:max_uses" json:"maxUses"`
	Uses        int        `gorm:"column:uses;not null;default:0" json:"uses"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Invite) TableName() string {
	return "invites"
}

// Expired 判断邀请在 now 时刻是否已过期
func (i *Invite) Expired(now time.Time) bool {
	return i.ExpiresAt != nil && i.ExpiresAt.Before(now)
}

// Exhausted 判断邀请次数是否已用尽
func (i *Invite) Exhausted() bool {
	return i.MaxUses != nil && i.Uses >= *i.MaxUses
}
