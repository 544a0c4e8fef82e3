package handler

import (
	"errors"
	"io"
	"net/http"

	"kama_community_server/internal/infrastructure/middleware"
	"kama_community_server/pkg/errorx"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse 错误响应体
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleSuccess 200 返回 data
func HandleSuccess(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, data)
}

// HandleDeleted 删除类操作统一返回 {"success": true}
func HandleDeleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleError 按错误码映射 HTTP 状态
// 业务错误只返回消息，未知错误返回 500 和原始错误信息
func HandleError(c *gin.Context, err error) {
	status := errorx.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		zap.L().Error("system error",
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err),
		)
		_ = c.Error(err)
		c.JSON(status, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(status, ErrorResponse{Error: errorx.Message(err)})
}

// HandleParamError 参数绑定失败返回 400，validator 错误会被翻译
func HandleParamError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && Trans != nil {
		msg := joinTranslated(RemoveTopStruct(validationErrs.Translate(Trans)))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}
	zap.L().Debug("param bind error", zap.Error(err))
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// bindJSON 允许空请求体，此时只做字段校验
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		if binding.Validator == nil {
			return nil
		}
		return binding.Validator.ValidateStruct(obj)
	}
	return err
}

// actor 当前登录用户，未登录时为空
func actor(c *gin.Context) string {
	userID, _ := middleware.CurrentUserID(c)
	return userID
}
