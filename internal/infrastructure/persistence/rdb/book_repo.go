package rdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookListTemplate 图书列表查询模板
// 内层连接books/authors/genres,并用两个相关子查询计算平均评分和评论数。
// 外层派生表让WHERE可以直接引用avg_rating/num_rating,MySQL不允许在WHERE中引用SELECT别名。
// 作者或类型为NULL的图书不出现在列表中。
// %s处只会拼入book.Compile生成的子句,取值全部走占位符。
const bookListTemplate = `SELECT book_id, book_name, author_name, genre_name, synopsis, avg_rating, num_rating
FROM (
	SELECT B.book_id AS book_id,
		B.book_name AS book_name,
		A.author_name AS author_name,
		G.genre_name AS genre_name,
		B.synopsis AS synopsis,
		(SELECT AVG(R.rating) FROM reviews R WHERE R.book_id = B.book_id) AS avg_rating,
		(SELECT COUNT(*) FROM reviews R WHERE R.book_id = B.book_id) AS num_rating
	FROM books B
	JOIN authors A ON A.author_id = B.author_id
	JOIN genres G ON G.genre_id = B.genre_id
) catalog
%s
ORDER BY book_id`

var bookLookup = nameLookup{
	table:   "books",
	idCol:   "book_id",
	nameCol: "book_name",
}

// bookRepository 图书仓储实现
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// BookListSQL 返回拼接过滤子句后的完整查询
func BookListSQL(filter book.Clause) string {
	return fmt.Sprintf(bookListTemplate, filter.SQL)
}

// List 按过滤条件查询图书列表
// 列名与book.Row字段按GORM命名规则一一对应,直接扫描到领域行对象
func (r *bookRepository) List(ctx context.Context, filter book.Clause) ([]book.Row, error) {
	rows := make([]book.Row, 0)
	err := getDB(ctx, r.db).Raw(BookListSQL(filter), filter.Args...).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "list books failed")
	}
	return rows, nil
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := &BookModel{
		Name:     b.Name,
		AuthorID: b.AuthorID,
		GenreID:  b.GenreID,
		Synopsis: b.Synopsis,
	}

	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create book failed")
	}

	b.ID = model.ID
	return nil
}

// Delete 删除图书
func (r *bookRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := getDB(ctx, r.db).Delete(&BookModel{}, id)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "delete book failed")
	}
	return result.RowsAffected, nil
}

// ResolveID 按书名解析图书ID
func (r *bookRepository) ResolveID(ctx context.Context, name string) (*uint, error) {
	return resolveID(ctx, getDB(ctx, r.db), bookLookup, name)
}
