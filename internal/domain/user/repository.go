package user

import (
	"context"
)

// Repository 用户仓储接口
// DDD设计说明：
// 1. 接口定义在domain层（依赖倒置原则）
// 2. 具体实现在infrastructure/persistence/rdb
// 3. 删除/更新返回受影响行数，0行时仍视为成功，由调用方决定是否记录
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u *User) error

	// Update 按ID整体更新username/email/join_date/bio
	Update(ctx context.Context, u *User) (int64, error)

	Delete(ctx context.Context, id uint) (int64, error)

	// ResolveID 按用户名解析ID(同名取最小ID);不存在返回nil
	ResolveID(ctx context.Context, username string) (*uint, error)
}
