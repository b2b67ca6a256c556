package rdb

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/user"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

var userLookup = nameLookup{
	table:   "users",
	idCol:   "user_id",
	nameCol: "username",
}

// userRepository 用户仓储实现
// 设计说明：
// 1. 实现domain/user/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 用户名、邮箱都不加唯一约束，重名由ResolveID按最小ID处理
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
// 注意：返回的是domain层的接口类型，不是具体类型（依赖倒置）
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// List 按ID顺序返回全部用户
func (r *userRepository) List(ctx context.Context) ([]user.User, error) {
	var models []UserModel
	if err := getDB(ctx, r.db).Order("user_id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "list users failed")
	}

	users := make([]user.User, 0, len(models))
	for _, m := range models {
		users = append(users, *m.toEntity())
	}
	return users, nil
}

// Create 创建用户
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := fromUserEntity(u)
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "create user failed")
	}

	u.ID = model.ID
	return nil
}

// Update 按ID整体更新
// 使用map而不是结构体，空字符串也会被写入
func (r *userRepository) Update(ctx context.Context, u *user.User) (int64, error) {
	result := getDB(ctx, r.db).Model(&UserModel{}).
		Where("user_id = ?", u.ID).
		Updates(map[string]interface{}{
			"username":  u.Username,
			"email":     u.Email,
			"join_date": Date(u.JoinDate),
			"bio":       u.Bio,
		})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "update user failed")
	}
	return result.RowsAffected, nil
}

// Delete 删除用户
// 用户的评论、书架条目保留，列表查询通过内连接自然过滤
func (r *userRepository) Delete(ctx context.Context, id uint) (int64, error) {
	result := getDB(ctx, r.db).Delete(&UserModel{}, id)
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "delete user failed")
	}
	return result.RowsAffected, nil
}

// ResolveID 按用户名解析用户ID
func (r *userRepository) ResolveID(ctx context.Context, username string) (*uint, error) {
	return resolveID(ctx, getDB(ctx, r.db), userLookup, username)
}

func fromUserEntity(u *user.User) *UserModel {
	return &UserModel{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		JoinDate: Date(u.JoinDate),
		Bio:      u.Bio,
	}
}

func (m *UserModel) toEntity() *user.User {
	return &user.User{
		ID:       m.ID,
		Username: m.Username,
		Email:    m.Email,
		JoinDate: string(m.JoinDate),
		Bio:      m.Bio,
	}
}
