package handler

import (
	"kama_community_server/internal/dto/request"
	"kama_community_server/internal/service"

	"github.com/gin-gonic/gin"
)

// MessageHandler 消息与表情回应请求处理器
type MessageHandler struct {
	messageSvc service.MessageService
}

func NewMessageHandler(messageSvc service.MessageService) *MessageHandler {
	return &MessageHandler{messageSvc: messageSvc}
}

// Send 发送消息
// POST /channels/:id/messages
// 请求体: request.SendMessageRequest，content 缺省为空字符串
func (h *MessageHandler) Send(c *gin.Context) {
	var req request.SendMessageRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	msg, err := h.messageSvc.Send(c.Request.Context(), actor(c), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": msg})
}

// List 分页获取频道消息
// GET /channels/:id/messages?limit=50&before=2024-01-01T00:00:00Z
// 响应: {"messages": [...]}，按时间升序
func (h *MessageHandler) List(c *gin.Context) {
	var req request.ListMessagesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	messages, err := h.messageSvc.List(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"messages": messages})
}

// Edit PATCH /messages/:id
func (h *MessageHandler) Edit(c *gin.Context) {
	var req request.EditMessageRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	msg, err := h.messageSvc.Edit(c.Request.Context(), actor(c), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"message": msg})
}

// Delete DELETE /messages/:id
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.messageSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		HandleError(c, err)
		return
	}
	HandleDeleted(c)
}

// AddReaction POST /messages/:id/reactions
func (h *MessageHandler) AddReaction(c *gin.Context) {
	var req request.AddReactionRequest
	if err := bindJSON(c, &req); err != nil {
		HandleParamError(c, err)
		return
	}
	reaction, err := h.messageSvc.AddReaction(c.Request.Context(), actor(c), c.Param("id"), req)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"reaction": reaction})
}

// RemoveReaction 删除自己的回应
// DELETE /messages/:id/reactions/:emoji，emoji 需 URL 编码
func (h *MessageHandler) RemoveReaction(c *gin.Context) {
	if err := h.messageSvc.RemoveReaction(c.Request.Context(), actor(c), c.Param("id"), c.Param("emoji")); err != nil {
		HandleError(c, err)
		return
	}
	HandleDeleted(c)
}

// ListReactions GET /messages/:id/reactions
func (h *MessageHandler) ListReactions(c *gin.Context) {
	reactions, err := h.messageSvc.ListReactions(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"reactions": reactions})
}
