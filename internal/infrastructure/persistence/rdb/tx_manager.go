package rdb

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/pkg/logger"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "rdb"

type txKey struct{}

// TxManager 事务管理器
// 设计说明:
// 1. 每个请求的所有语句都在一个显式事务中执行,隔离级别为READ UNCOMMITTED
// 2. 列表查询允许读到并发写事务未提交的数据
// 3. 事务DB通过context传递给Repository
// 4. fn返回error时ROLLBACK,返回nil时COMMIT;不做任何重试
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// 状态流转: STARTED → EXECUTING → COMMITTED | ROLLED_BACK
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    id, err := genreRepo.ResolveID(ctx, "Fantasy")
//	    if err != nil {
//	        return err // 回滚
//	    }
//	    return bookRepo.Create(ctx, book.NewBook("Dune", nil, id, ""))
//	})
//
// ctx中已有事务时直接加入该事务,不再开启新事务
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	ctx, span := tracing.StartSpan(ctx, tracerName, "store.Transaction")
	log := logger.FromContext(ctx)
	start := time.Now()

	log.Debug("transaction started")
	defer func() {
		elapsed := time.Since(start)
		if err != nil {
			metrics.ObserveTransaction(metrics.ResultRolledBack, elapsed)
			log.WithError(err).WithField("elapsed", elapsed).Debug("transaction rolled back")
		} else {
			metrics.ObserveTransaction(metrics.ResultCommitted, elapsed)
			log.WithField("elapsed", elapsed).Debug("transaction committed")
		}
		tracing.EndSpan(span, err)
	}()

	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := m.relaxIsolation(tx); err != nil {
			return err
		}
		return fn(context.WithValue(ctx, txKey{}, tx))
	}, m.txOptions()...)
}

// txOptions MySQL通过事务选项设置隔离级别
func (m *TxManager) txOptions() []*sql.TxOptions {
	if m.isSQLite() {
		return nil
	}
	return []*sql.TxOptions{{Isolation: sql.LevelReadUncommitted}}
}

// relaxIsolation SQLite没有事务级隔离选项,改用连接级PRAGMA
func (m *TxManager) relaxIsolation(tx *gorm.DB) error {
	if !m.isSQLite() {
		return nil
	}
	return tx.Exec("PRAGMA read_uncommitted = 1").Error
}

func (m *TxManager) isSQLite() bool {
	return m.db.Dialector.Name() == "sqlite"
}

// getDB 从context获取事务DB,如果没有则使用默认DB
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
