package request

// AddMemberRequest 添加成员请求
// userId 由请求体显式给出，同时用于自助加入和管理员添加
type AddMemberRequest struct {
	UserID string  `json:"userId" binding:"required"`
	RoleID *string `json:"roleId"`
}

// UpdateMemberRoleRequest 修改成员角色请求，roleId 为 null 表示清除角色
type UpdateMemberRoleRequest struct {
	RoleID *string `json:"roleId"`
}
