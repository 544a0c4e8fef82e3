package request

// CreateChannelRequest 创建频道请求
type CreateChannelRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Type        string  `json:"type" binding:"omitempty,oneof=text voice announcement"`
	Position    int     `json:"position"`
}

// UpdateChannelRequest 更新频道请求
type UpdateChannelRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Type        *string `json:"type" binding:"omitempty,oneof=text voice announcement"`
	Position    *int    `json:"position"`
}
