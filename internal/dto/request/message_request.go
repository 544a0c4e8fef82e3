package request

import "time"

// SendMessageRequest 发送消息请求，content 缺省为空字符串
type SendMessageRequest struct {
	Content   *string `json:"content"`
	ReplyToID *string `json:"replyToId"`
}

// EditMessageRequest 编辑消息请求
type EditMessageRequest struct {
	Content *string `json:"content" binding:"required"`
}

// ListMessagesRequest 消息列表查询参数
// before 为 RFC3339 时间，只返回严格早于该时间的消息
type ListMessagesRequest struct {
	Limit  int        `form:"limit"`
	Before *time.Time `form:"before" time_format:"2006-01-02T15:04:05Z07:00"`
}

// AddReactionRequest 添加回应请求
type AddReactionRequest struct {
	Emoji string `json:"emoji" binding:"required,min=1,max=64"`
}
