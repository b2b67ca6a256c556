package user

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application"
	"github.com/xiebiao/bookcatalog/internal/domain/user"
)

// UseCase 用户用例
// 邮箱校验在开启事务之前完成,校验失败不会产生任何写入
type UseCase struct {
	tx    application.Transactor
	users user.Repository
}

// NewUseCase 创建用户用例
func NewUseCase(tx application.Transactor, users user.Repository) *UseCase {
	return &UseCase{tx: tx, users: users}
}

// UserInput 新增/更新用户的输入
type UserInput struct {
	Username string
	Email    string
	JoinDate string
	Bio      string
}

func (uc *UseCase) List(ctx context.Context) ([]user.User, error) {
	var users []user.User
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		users, err = uc.users.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Add 新增用户
func (uc *UseCase) Add(ctx context.Context, in UserInput) (*user.User, error) {
	u, err := user.NewUser(in.Username, in.Email, in.JoinDate, in.Bio)
	if err != nil {
		return nil, err
	}

	err = uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.users.Create(ctx, u)
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Update 按ID整体更新用户
// 邮箱规则与新增一致;ID不存在时仍返回成功
func (uc *UseCase) Update(ctx context.Context, id uint, in UserInput) error {
	u, err := user.NewUser(in.Username, in.Email, in.JoinDate, in.Bio)
	if err != nil {
		return err
	}
	u.ID = id

	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.users.Update(ctx, u)
		if err != nil {
			return err
		}
		application.LogAffected(ctx, "user.update", id, n)
		return nil
	})
}

func (uc *UseCase) Delete(ctx context.Context, id uint) error {
	return uc.tx.Transaction(ctx, func(ctx context.Context) error {
		n, err := uc.users.Delete(ctx, id)
		if err != nil {
			return err
		}
		application.LogAffected(ctx, "user.delete", id, n)
		return nil
	})
}
