package author

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
)

// UseCase 作者用例
type UseCase struct {
	tx      application.Transactor
	authors author.Repository
}

// NewUseCase 创建作者用例
func NewUseCase(tx application.Transactor, authors author.Repository) *UseCase {
	return &UseCase{tx: tx, authors: authors}
}

func (uc *UseCase) List(ctx context.Context) ([]author.Author, error) {
	var authors []author.Author
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		authors, err = uc.authors.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return authors, nil
}

func (uc *UseCase) Add(ctx context.Context, name string) (*author.Author, error) {
	a := &author.Author{Name: name}
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.authors.Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Delete 删除作者,该作者的图书保留但author_id置为NULL
func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.authors.DeleteDetaching(ctx, id)
		if err != nil {
			return err
		}
		application.LogAffected(ctx, "author.delete", id, n)
		return nil
	})
}
