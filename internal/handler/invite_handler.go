package handler

import (
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/service"

	"github.com/gin-gonic/gin"
)

// InviteHandler 邀请请求处理器
type InviteHandler struct {
	inviteSvc service.InviteService
}

func NewInviteHandler(inviteSvc service.InviteService) *InviteHandler {
	return &InviteHandler{inviteSvc: inviteSvc}
}

// Create 创建邀请，code 由服务端生成
// POST /communities/:id/invites
// 请求体: request.CreateInviteRequest
func (h *InviteHandler) Create(c *gin.Context) {
	var req request.CreateInviteRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	invite, err := h.inviteSvc.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"invite": invite})
}

// List GET /communities/:id/invites
func (h *InviteHandler) List(c *gin.Context) {
	invites, err := h.inviteSvc.ListByCommunity(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"invites": invites})
}

// Get 按邀请码查询
// GET /invites/:code
// 响应: {"invite": ..., "community": ...}
func (h *InviteHandler) Get(c *gin.Context) {
	invite, community, err := h.inviteSvc.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"invite": invite, "community": community})
}

// Join 使用邀请码加入社区
// POST /invites/:code/join
// 响应: {"communityId": ...}
func (h *InviteHandler) Join(c *gin.Context) {
	communityID, err := h.inviteSvc.Join(c.Request.Context(), actor(c), c.Param("code"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"communityId": communityID})
}

// Revoke DELETE /invites/:id
func (h *InviteHandler) Revoke(c *gin.Context) {
	if err := h.inviteSvc.Revoke(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleDeleted(c)
}
