package user

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ErrInvalidEmail 邮箱格式不正确
var ErrInvalidEmail = apperrors.ErrInvalidEmail
