package library

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/library"
	"github.com/xiebiao/bookcatalog/pkg/logger"
)

// UseCase 用户书架用例
type UseCase struct {
	tx      application.Transactor
	entries library.Repository
}

// NewUseCase 创建书架用例
func NewUseCase(tx application.Transactor, entries library.Repository) *UseCase {
	return &UseCase{tx: tx, entries: entries}
}

// ListByUser 查询某用户的书架
func (uc *UseCase) ListByUser(ctx context.Context, userID uint) ([]library.Entry, error) {
	var entries []library.Entry
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		entries, err = uc.entries.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Save 加入书架或更新已读状态
func (uc *UseCase) Save(ctx context.Context, e library.Entry) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.entries.Upsert(ctx, &e)
	})
}

// Remove 从书架移除
func (uc *UseCase) Remove(ctx context.Context, userID, bookID uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.entries.Delete(ctx, userID, bookID)
		if err != nil {
			return err
		}
		if n == 0 {
			logger.FromContext(ctx).WithFields(logrus.Fields{
				"op":            "library.delete",
				"user_id":       userID,
				"book_id":       bookID,
				"rows_affected": n,
			}).Info("no rows matched")
		}
		return nil
	})
}
