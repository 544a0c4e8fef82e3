package handler

import (
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler 社区成员请求处理器
type MemberHandler struct {
	memberSvc service.MemberService
}

func NewMemberHandler(memberSvc service.MemberService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc}
}

// List GET /communities/:id/members
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.memberSvc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"members": members})
}

// Add POST /communities/:id/members
func (h *MemberHandler) Add(c *gin.Context) {
	var req request.AddMemberRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	member, err := h.memberSvc.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"member": member})
}

// UpdateRole PATCH /communities/:id/members/:userId
func (h *MemberHandler) UpdateRole(c *gin.Context) {
	var req request.UpdateMemberRoleRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	member, err := h.memberSvc.UpdateRole(c.Request.Context(), c.Param("id"), c.Param("userId"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"member": member})
}

// Remove DELETE /communities/:id/members/:userId
func (h *MemberHandler) Remove(c *gin.Context) {
	if err := h.memberSvc.Remove(c.Request.Context(), c.Param("id"), c.Param("userId")); err != nil {
		HandleError(c, err)
		return
	}
	HandleDeleted(c)
}
