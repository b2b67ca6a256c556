package genre

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/genre"
)

// UseCase 类型用例
type UseCase struct {
	tx     application.Transactor
	genres genre.Repository
}

// NewUseCase 创建类型用例
func NewUseCase(tx application.Transactor, genres genre.Repository) *UseCase {
	return &UseCase{tx: tx, genres: genres}
}

func (uc *UseCase) List(ctx context.Context) ([]genre.Genre, error) {
	var genres []genre.Genre
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		genres, err = uc.genres.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return genres, nil
}

func (uc *UseCase) Add(ctx context.Context, name string) (*genre.Genre, error) {
	g := &genre.Genre{Name: name}
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.genres.Create(ctx, g)
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// Delete 删除类型,该类型的图书保留但genre_id置为NULL
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.genres.DeleteDetaching(ctx, id)
		if err != nil {
			return err
		}
		application.LogAffected(ctx, "genre.delete", id, n)
		return nil
	})
}
