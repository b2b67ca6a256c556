package handler

import (
	"github.com/gin-gonic/gin"

	appuser "github.com/xiebiao/bookcatalog/internal/application/user"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// UserHandler 用户HTTP处理器
type UserHandler struct {
	users *appuser.UseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(users *appuser.UseCase) *UserHandler {
	return &UserHandler{users: users}
}

// List 用户列表
// @Summary      用户列表
// @Tags         用户
// @Produce      json
// @Success      200 {array}  user.User
// @Failure      500 {object} response.ErrorBody
// @Router       /api/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// Add 新增用户
// @Summary      新增用户
// @Description  邮箱必须包含@,否则返回400且不写入
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.UserRequest true "用户信息"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody "邮箱格式错误"
// @Failure      500 {object} response.ErrorBody
// @Router       /api/users [post]
func (h *UserHandler) Add(c *gin.Context) {
	var req dto.UserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.users.Add(c.Request.Context(), toUserInput(req)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User added successfully")
}

// Update 更新用户
// @Summary      更新用户
// @Description  按userID整体覆盖;userID不存在时同样返回成功
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateUserRequest true "用户信息"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody "邮箱格式错误"
// @Failure      500 {object} response.ErrorBody
// @Router       /api/users/ [put]
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if err := h.users.Update(c.Request.Context(), req.UserID, toUserInput(req.UserRequest)); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User updated successfully")
}

// Delete 删除用户
// @Summary      删除用户
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "User deleted successfully")
}

func toUserInput(req dto.UserRequest) appuser.UserInput {
	return appuser.UserInput{
		Username: req.Username,
		Email:    req.Email,
		JoinDate: req.JoinDate,
		Bio:      req.Bio,
	}
}
