package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ErrInvalidFilterValue 数值过滤参数无法解析为浮点数
var ErrInvalidFilterValue = apperrors.ErrInvalidFilterValue
