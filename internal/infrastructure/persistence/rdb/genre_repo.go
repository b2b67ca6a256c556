package rdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/genre"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var genreLookup = nameLookup{
	table:   "genres",
	idCol:   "genre_id",
	nameCol: "genre_name",
}

// genreRepository 类型仓储实现
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建类型仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

func (r *genreRepository) List(ctx context.Context) ([]genre.Genre, error) {
	var models []GenreModel
	if err := getDB(ctx, r.db).Order("genre_id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "list genres failed")
	}

	genres := make([]genre.Genre, 0, len(models))
	for _, m := range models {
		genres = append(genres, genre.Genre{ID: m.ID, Name: m.Name})
	}
	return genres, nil
}

func (r *genreRepository) Create(ctx context.Context, g *genre.Genre) error {
	model := &GenreModel{Name: g.Name}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create genre failed")
	}

	g.ID = model.ID
	return nil
}

// DeleteDetaching 置空图书引用后删除类型
// 任一语句失败都返回错误，由外层事务整体回滚
func (r *genreRepository) DeleteDetaching(ctx context.Context, id uint) (int64, error) {
	db := getDB(ctx, r.db)

	err := db.Model(&BookModel{}).Where("genre_id = ?", id).Update("genre_id", nil).Error
	if err != nil {
		return 0, apperrors.Wrap(err, "detach genre from books failed")
	}

	result := db.Delete(&GenreModel{}, id)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "delete genre failed")
	}
	return result.RowsAffected, nil
}

func (r *genreRepository) ResolveID(ctx context.Context, name string) (*uint, error) {
	return resolveID(ctx, getDB(ctx, r.db), genreLookup, name)
}
