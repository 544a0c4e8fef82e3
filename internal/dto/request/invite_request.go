package request

import "time"

// CreateInviteRequest 创建邀请请求
// expiresAt 为 RFC3339 时间；maxUses 为空表示不限次数
type CreateInviteRequest struct {
	ExpiresAt *time.Time `json:"expiresAt"`
	MaxUses   *int       `json:"maxUses" binding:"omitempty,min=1"`
}
