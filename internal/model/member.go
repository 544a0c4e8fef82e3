package model

import "time"

// Member 社区成员关系，(CommunityID, UserID) 唯一
type Member struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	CommunityID string    `gorm:"column:community_id;type:varchar(64);not null;uniqueIndex:uk_member,priority:1" json:"communityId"`
	UserID      string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:uk_member,priority:2" json:"userId"`
	RoleID      *string   `gorm:"column:role_id;type:varchar(64)" json:"roleId"`
	JoinedAt    time.Time `gorm:"column:joined_at;autoCreateTime" json:"joinedAt"`
}

func (Member) TableName() string {
	return "members"
}
