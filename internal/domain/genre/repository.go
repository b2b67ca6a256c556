package genre

import (
	"context"
)

// Repository 类型仓储接口
type Repository interface {
	List(ctx context.Context) ([]Genre, error)
	Create(ctx context.Context, g *Genre) error

	// DeleteDetaching 先把引用该类型的图书genre_id置为NULL,再删除类型
	// 两条语句必须处于同一事务中
	DeleteDetaching(ctx context.Context, id uint) (int64, error)

	// ResolveID 按类型名解析ID(同名取最小ID);不存在返回nil
	ResolveID(ctx context.Context, name string) (*uint, error)
}
