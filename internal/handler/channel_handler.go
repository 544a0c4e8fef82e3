package handler

import (
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ChannelHandler 频道请求处理器
type ChannelHandler struct {
	channelSvc service.ChannelService
}

func NewChannelHandler(channelSvc service.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelSvc: channelSvc}
}

// Create POST /communities/:id/channels
func (h *ChannelHandler) Create(c *gin.Context) {
	var req request.CreateChannelRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	channel, err := h.channelSvc.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"channel": channel})
}

// List GET /communities/:id/channels，按 position 升序
func (h *ChannelHandler) List(c *gin.Context) {
	channels, err := h.channelSvc.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"channels": channels})
}

// Get GET /channels/:id
func (h *ChannelHandler) Get(c *gin.Context) {
	channel, err := h.channelSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"channel": channel})
}

// Update PATCH /channels/:id
func (h *ChannelHandler) Update(c *gin.Context) {
	var req request.UpdateChannelRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	channel, err := h.channelSvc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"channel": channel})
}

// Delete DELETE /channels/:id
func (h *ChannelHandler) Delete(c *gin.Context) {
	if err := h.channelSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleDeleted(c)
}
