package review

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/review"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
)

// UseCase 评论用例
// 新增评论时用户名、书名在同一事务中解析,解析不到的一方存NULL
type UseCase struct {
	tx      application.Transactor
	reviews review.Repository
	users   user.Repository
	books   book.Repository
}

// NewUseCase 创建评论用例
func NewUseCase(tx application.Transactor, reviews review.Repository, users user.Repository, books book.Repository) *UseCase {
	return &UseCase{tx: tx, reviews: reviews, users: users, books: books}
}

// AddReviewRequest 新增评论请求DTO
type AddReviewRequest struct {
	Username   string
	BookName   string
	Rating     int
	Review     string
	ReviewDate string
}

func (uc *UseCase) List(ctx context.Context) ([]review.Row, error) {
	var rows []review.Row
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		rows, err = uc.reviews.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Add 新增评论
func (uc *UseCase) Add(ctx context.Context, req AddReviewRequest) (*review.Review, error) {
	var created *review.Review
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		userID, err := uc.users.ResolveID(ctx, req.Username)
		if err != nil {
			return err
		}
		bookID, err := uc.books.ResolveID(ctx, req.BookName)
		if err != nil {
			return err
		}

		r := &review.Review{
			UserID:     userID,
			BookID:     bookID,
			Rating:     req.Rating,
			Body:       req.Review,
			ReviewDate: req.ReviewDate,
		}
		if err := uc.reviews.Create(ctx, r); err != nil {
			return err
		}
		created = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.reviews.Delete(ctx, id)
		if err != nil {
			return err
		}
		application.LogAffected(ctx, "review.delete", id, n)
		return nil
	})
}
