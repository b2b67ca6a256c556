package user

import (
	"strings"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// User 用户实体
// JoinDate保持客户端提交的日期字符串(YYYY-MM-DD),数据库列类型为DATE
type User struct {
	ID       uint   `json:"userID"`
	Username string `json:"username"`
	Email    string `json:"email"`
	JoinDate string `json:"join_date"`
	Bio      string `json:"bio"`
}

// NewUser 创建新用户(工厂方法),邮箱不合法时返回ErrInvalidEmail
func NewUser(username, email, joinDate, bio string) (*User, error) {
	u := &User{
		Username: username,
		Email:    email,
		JoinDate: joinDate,
		Bio:      bio,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate 业务规则:邮箱必须包含@
func (u *User) Validate() error {
	if !strings.Contains(u.Email, "@") {
		return apperrors.ErrInvalidEmail
	}
	return nil
}
