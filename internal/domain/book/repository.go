package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有方法都从ctx中取事务,必须在TxManager.Transaction内调用
type Repository interface {
	// List 按编译好的过滤条件查询图书列表
	List(ctx context.Context, filter Clause) ([]Row, error)

	// Create 创建图书
	Create(ctx context.Context, book *Book) error

	// Delete 删除图书,返回受影响行数
	Delete(ctx context.Context, id uint) (int64, error)

	// ResolveID 按书名解析图书ID
	// 同名多条时取最小ID;不存在返回nil
	ResolveID(ctx context.Context, name string) (*uint, error)
}
