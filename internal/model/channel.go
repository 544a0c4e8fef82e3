package model

import "time"

// 频道类型
const (
	ChannelTypeText         = "text"
	ChannelTypeVoice        = "voice"
	ChannelTypeAnnouncement = "announcement"
)

// Channel 社区下的频道，按 Position 升序展示
type Channel struct {
	ID          string    `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	CommunityID string    `gorm:"column:community_id;type:varchar(64);index;not null" json:"communityId"`
	Name        string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Description *string   `gorm:"column:description;type:text" json:"description"`
	Category    *string   `gorm:"column:category;type:varchar(255)" json:"category"`
	Type        string    `gorm:"column:type;type:varchar(20);not null;default:text" json:"type"`
	Position    int       `gorm:"column:position;not null;default:0" json:"position"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Channel) TableName() string {
	return "channels"
}
