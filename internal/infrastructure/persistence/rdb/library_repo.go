package rdb

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookcatalog/internal/domain/library"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

const libraryListQuery = `SELECT L.user_id AS user_id,
	L.book_id AS book_id,
	B.book_name AS book_name,
	L.has_read AS has_read
FROM user_library L
JOIN books B ON B.book_id = L.book_id
WHERE L.user_id = ?
ORDER BY L.book_id`

// libraryRepository 书架仓储实现
type libraryRepository struct {
	db *gorm.DB
}

// NewLibraryRepository 创建书架仓储
func NewLibraryRepository(db *gorm.DB) library.Repository {
	return &libraryRepository{db: db}
}

func (r *libraryRepository) ListByUser(ctx context.Context, userID uint) ([]library.Entry, error) {
	entries := make([]library.Entry, 0)
	if err := getDB(ctx, r.db).Raw(libraryListQuery, userID).Scan(&entries).Error; err != nil {
		return nil, apperrors.Wrap(err, "list library failed")
	}
	return entries, nil
}

// Upsert 插入书架条目，主键冲突时只更新has_read
// MySQL: ON DUPLICATE KEY UPDATE；SQLite: ON CONFLICT DO UPDATE
func (r *libraryRepository) Upsert(ctx context.Context, e *library.Entry) error {
	model := &LibraryModel{UserID: e.UserID, BookID: e.BookID, HasRead: e.HasRead}
	err := getDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "book_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"has_read"}),
	}).Create(model).Error
	if err != nil {
		return apperrors.Wrap(err, "upsert library entry failed")
	}
	return nil
}

func (r *libraryRepository) Delete(ctx context.Context, userID, bookID uint) (int64, error) {
	result := getDB(ctx, r.db).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		Delete(&LibraryModel{})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "delete library entry failed")
	}
	return result.RowsAffected, nil
}
