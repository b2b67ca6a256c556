// Package application 应用层公共约定
//
// 每个用例都是一个完整的事务单元：用例内的所有仓储调用都在同一个
// Transactor.Transaction中执行，任一步失败整体回滚。
package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// Transactor 事务执行器（由rdb.TxManager实现）
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// LogAffected 删除/更新没有命中任何行时记录info日志
// 请求仍然按成功返回
func LogAffected(ctx context.Context, op string, id uint, affected int64) {
	if affected > 0 {
		return
	}
	logger.FromContext(ctx).WithFields(logrus.Fields{
		"op":            op,
		"id":            id,
		"rows_affected": affected,
	}).Info("no rows matched")
}
