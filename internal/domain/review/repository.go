package review

import (
	"context"
)

// Repository 评论仓储接口
type Repository interface {
	// List 评论列表,连接用户与图书;用户或图书已删除的评论不返回
	List(ctx context.Context) ([]Row, error)
	Create(ctx context.Context, r *Review) error
	Delete(ctx context.Context, id uint) (int64, error)
}
