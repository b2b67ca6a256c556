package dto

// UserRequest 新增用户请求
// 邮箱只校验是否包含@,由领域层完成,这里不加binding规则
type UserRequest struct {
	Username string `json:"username" example:"ada"`
	Email    string `json:"email" example:"ada@example.com"`
	JoinDate string `json:"join_date" example:"2024-01-15"`
	Bio      string `json:"bio" example:"Reads mostly science fiction"`
}

// UpdateUserRequest 更新用户请求(按userID整体覆盖)
type UpdateUserRequest struct {
	UserID uint `json:"userID" example:"1"`
	UserRequest
}
