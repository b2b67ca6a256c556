package author

import (
	"context"
)

// Repository 作者仓储接口
type Repository interface {
	List(ctx context.Context) ([]Author, error)
	Create(ctx context.Context, a *Author) error

	// DeleteDetaching 先把引用该作者的图书author_id置为NULL,再删除作者
	// 两条语句必须处于同一事务中
	DeleteDetaching(ctx context.Context, id uint) (int64, error)

	// ResolveID 按作者名解析ID(同名取最小ID);不存在返回nil
	ResolveID(ctx context.Context, name string) (*uint, error)
}
