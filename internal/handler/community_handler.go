// Package handler 提供 HTTP 请求处理器
// 本文件处理社区相关的 API 请求
package handler

import (
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CommunityHandler 社区请求处理器
type CommunityHandler struct {
	communitySvc service.CommunityService
}

// NewCommunityHandler 创建社区处理器实例
func NewCommunityHandler(communitySvc service.CommunityService) *CommunityHandler {
	return &CommunityHandler{communitySvc: communitySvc}
}

// Create 创建社区，调用者成为所有者
// POST /communities
// 请求体: request.CreateCommunityRequest
// 响应: {"community": ...}
func (h *CommunityHandler) Create(c *gin.Context) {
	var req request.CreateCommunityRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	community, err := h.communitySvc.Create(c.Request.Context(), actor(c), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"community": community})
}

// ListOwned 列出我拥有的社区
// GET /communities
// 响应: {"communities": [...]}
func (h *CommunityHandler) ListOwned(c *gin.Context) {
	communities, err := h.communitySvc.ListOwned(c.Request.Context(), actor(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"communities": communities})
}

// Get GET /communities/:id
func (h *CommunityHandler) Get(c *gin.Context) {
	community, err := h.communitySvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"community": community})
}

// Update 仅所有者
// PATCH /communities/:id
// 请求体: request.UpdateCommunityRequest
func (h *CommunityHandler) Update(c *gin.Context) {
	var req request.UpdateCommunityRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	community, err := h.communitySvc.Update(c.Request.Context(), actor(c), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"community": community})
}

// Delete 仅所有者
// DELETE /communities/:id
func (h *CommunityHandler) Delete(c *gin.Context) {
	if err := h.communitySvc.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleDeleted(c)
}
