package model

import "time"

// Reaction 消息上的表情回应
// 同一用户对同一消息的同一表情只能有一条记录
type Reaction struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	MessageID string    `gorm:"column:message_id;type:varchar(64);not null;uniqueIndex:uk_reaction,priority:1" json:"messageId"`
	UserID    string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:uk_reaction,priority:2" json:"userId"`
	Emoji     string    `gorm:"column:emoji;type:varchar(64);not null;uniqueIndex:uk_reaction,priority:3" json:"emoji"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Reaction) TableName() string {
	return "reactions"
}
