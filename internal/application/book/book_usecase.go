package book

import (
	"context"
	"net/url"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/genre"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// UseCase 图书用例
// 设计说明:
// 1. 列表查询:编译过滤参数 → 在事务中执行查询
// 2. 新增图书:作者名/类型名在同一事务中解析为ID后再插入
// 3. 过滤参数编译失败时不开启事务,直接返回错误
type UseCase struct {
	tx      application.Transactor
	books   book.Repository
	authors author.Repository
	genres  genre.Repository
}

// NewUseCase 创建图书用例
func NewUseCase(tx application.Transactor, books book.Repository, authors author.Repository, genres genre.Repository) *UseCase {
	return &UseCase{tx: tx, books: books, authors: authors, genres: genres}
}

// AddBookRequest 新增图书请求DTO
// AuthorName/GenreName为空或解析不到时对应列存NULL
type AddBookRequest struct {
	BookName   string
	AuthorName string
	GenreName  string
	Synopsis   string
}

// List 按查询串过滤图书列表
// genres[]可重复出现,其余参数只取第一个值
func (uc *UseCase) List(ctx context.Context, query url.Values) ([]book.Row, error) {
	params := make(map[string]string, len(query))
	used := make([]string, 0, len(query))
	for key := range query {
		params[key] = query.Get(key)
	}
	genres := query[book.ParamGenres]
	for _, key := range []string{book.ParamGenres, book.ParamBookName, book.ParamAuthorName, book.ParamAvgRating, book.ParamNumRating} {
		if query.Get(key) != "" {
			used = append(used, key)
		}
	}

	filter, err := book.Compile(genres, params)
	metrics.ObserveBookFilter(used, err != nil)
	if err != nil {
		return nil, err
	}

	var rows []book.Row
	err = uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		rows, err = uc.books.List(ctx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Add 新增图书
func (uc *UseCase) Add(ctx context.Context, req AddBookRequest) (*book.Book, error) {
	var created *book.Book
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		authorID, err := resolveOptional(ctx, req.AuthorName, uc.authors.ResolveID)
		if err != nil {
			return err
		}
		genreID, err := resolveOptional(ctx, req.GenreName, uc.genres.ResolveID)
		if err != nil {
			return err
		}

		b := book.NewBook(req.BookName, authorID, genreID, req.Synopsis)
		if err := uc.books.Create(ctx, b); err != nil {
			return err
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete 删除图书
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.books.Delete(ctx, id)
		if err != nil {
			return err
		}
		application.LogAffected(ctx, "book.delete", id, n)
		return nil
	})
}

// resolveOptional 名称为空直接返回nil(存NULL),否则按名称解析
func resolveOptional(ctx context.Context, name string, resolve func(context.Context, string) (*uint, error)) (*uint, error) {
	if name == "" {
		return nil, nil
	}
	return resolve(ctx, name)
}
