package rdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/author"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var authorLookup = nameLookup{
	table:   "authors",
	idCol:   "author_id",
	nameCol: "author_name",
}

// authorRepository 作者仓储实现
type authorRepository struct {
	db *gorm.DB
}

// NewAuthorRepository 创建作者仓储
func NewAuthorRepository(db *gorm.DB) author.Repository {
	return &authorRepository{db: db}
}

func (r *authorRepository) List(ctx context.Context) ([]author.Author, error) {
	var models []AuthorModel
	if err := getDB(ctx, r.db).Order("author_id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "list authors failed")
	}

	authors := make([]author.Author, 0, len(models))
	for _, m := range models {
		authors = append(authors, author.Author{ID: m.ID, Name: m.Name})
	}
	return authors, nil
}

func (r *authorRepository) Create(ctx context.Context, a *author.Author) error {
	model := &AuthorModel{Name: a.Name}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create author failed")
	}

	a.ID = model.ID
	return nil
}

// DeleteDetaching 置空图书引用后删除作者
// 任一语句失败都返回错误，由外层事务整体回滚
func (r *authorRepository) DeleteDetaching(ctx context.Context, id uint) (int64, error) {
	db := getDB(ctx, r.db)

	err := db.Model(&BookModel{}).Where("author_id = ?", id).Update("author_id", nil).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "detach author from books failed")
	}

	result := db.Delete(&AuthorModel{}, id)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "delete author failed")
	}
	return result.RowsAffected, nil
}

func (r *authorRepository) ResolveID(ctx context.Context, name string) (*uint, error) {
	return resolveID(ctx, getDB(ctx, r.db), authorLookup, name)
}
