package request

// CreateCommunityRequest 创建社区请求
type CreateCommunityRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=255"`
	Description *string `json:"description"`
	Privacy     string  `json:"privacy" binding:"omitempty,oneof=public private invite-only"`
}

// UpdateCommunityRequest 更新社区请求，未提供的字段保持不变
type UpdateCommunityRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description"`
	Privacy     *string `json:"privacy" binding:"omitempty,oneof=public private invite-only"`
}
