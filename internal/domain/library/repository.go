package library

import (
	"context"
)

// Repository 书架仓储接口
type Repository interface {
	// ListByUser 某用户的书架,附带书名
	ListByUser(ctx context.Context, userID uint) ([]Entry, error)

	// Upsert 加入书架;已存在时只更新has_read
	Upsert(ctx context.Context, e *Entry) error

	Delete(ctx context.Context, userID, bookID uint) (int64, error)
}
