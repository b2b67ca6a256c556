package rdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/review"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 评论列表：内连接用户与图书，引用已删除的评论不返回
const reviewListQuery = `SELECT R.review_id AS review_id,
	U.username AS username,
	B.book_name AS book_name,
	R.rating AS rating,
	R.review AS review,
	R.review_date AS review_date
FROM reviews R
JOIN users U ON U.user_id = R.user_id
JOIN books B ON B.book_id = R.book_id
ORDER BY R.review_id`

// reviewRepository 评论仓储实现
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) List(ctx context.Context) ([]review.Row, error) {
	rows := make([]review.Row, 0)
	if err := getDB(ctx, r.db).Raw(reviewListQuery).Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "list reviews failed")
	}
	return rows, nil
}

func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		UserID:     rv.UserID,
		BookID:     rv.BookID,
		Rating:     rv.Rating,
		Review:     rv.Body,
		ReviewDate: Date(rv.ReviewDate),
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create review failed")
	}

	rv.ID = model.ID
	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := getDB(ctx, r.db).Delete(&ReviewModel{}, id)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "delete review failed")
	}
	return result.RowsAffected, nil
}
