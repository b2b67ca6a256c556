package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// MessageBody 写操作成功响应：{"message": "..."}
type MessageBody struct {
	Message string `json:"message" example:"Book added successfully"`
}

// ErrorBody 错误响应：{"error": "..."}
type ErrorBody struct {
	Error string `json:"error" example:"database error: no such table: books"`
}

// Success 直接输出数据（列表接口返回JSON数组）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Message 写操作成功
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	if err := uc.Add(ctx, req); err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := StatusCode(appErr.Code)

	entry := logger.FromContext(c.Request.Context()).WithField("code", appErr.Code)
	if appErr.Err != nil {
		entry = entry.WithError(appErr.Err)
	}
	if status >= http.StatusInternalServerError {
		entry.Error(appErr.Message)
	} else {
		entry.Warn(appErr.Message)
	}

	c.JSON(status, ErrorBody{Error: appErr.Detail()})
}

// StatusCode 业务错误码 → HTTP状态码
// 只有邮箱格式错误以400返回，其余错误统一500
func StatusCode(code int) int {
	switch code {
	case apperrors.ErrCodeInvalidEmail:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
