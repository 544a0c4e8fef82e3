package model

import "time"

// Message 频道消息
// 只有 Content 和 EditedAt 可以被编辑修改
type Message struct {
	ID        string     `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	ChannelID string     `gorm:"column:channel_id;type:varchar(64);index:idx_channel_created,priority:1;not null" json:"channelId"`
	AuthorID  string     `gorm:"column:author_id;type:varchar(64);not null" json:"authorId"`
	Content   string     `gorm:"column:content;type:text" json:"content"`
	CreatedAt time.Time  `gorm:"column:created_at;index:idx_channel_created,priority:2;autoCreateTime" json:"createdAt"`
	EditedAt  *time.Time `gorm:"column:edited_at" json:"editedAt"`
	ReplyToID *string    `gorm:"column:reply_to_id;type:varchar(64)" json:"replyToId"`
}

func (Message) TableName() string {
	return "messages"
}
