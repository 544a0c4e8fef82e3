package request

// CreateRoleRequest 创建角色请求
type CreateRoleRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=255"`
	Color       string          `json:"color" binding:"omitempty,max=20"`
	Permissions map[string]bool `json:"permissions"`
}

// UpdateRoleRequest 更新角色请求
type UpdateRoleRequest struct {
	Name        *string         `json:"name" binding:"omitempty,min=1,max=255"`
	Color       *string         `json:"color" binding:"omitempty,max=20"`
	Permissions map[string]bool `json:"permissions"`
}
