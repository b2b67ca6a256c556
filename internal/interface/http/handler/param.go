package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// pathID 解析路径中的数字ID
func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, apperrors.WithCause(apperrors.ErrInvalidParams, err)
	}
	return uint(id), nil
}

// bindJSON 绑定请求体,失败时转为ErrBindError
func bindJSON(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindJSON(obj); err != nil {
		return apperrors.WithCause(apperrors.ErrBindError, err)
	}
	return nil
}
