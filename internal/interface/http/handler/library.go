package handler

import (
	"github.com/gin-gonic/gin"

	applibrary "github.com/xiebiao/bookcatalog/internal/application/library"
	"github.com/xiebiao/bookcatalog/internal/domain/library"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// LibraryHandler 用户书架HTTP处理器
type LibraryHandler struct {
	library *applibrary.UseCase
}

// NewLibraryHandler 创建书架处理器
func NewLibraryHandler(uc *applibrary.UseCase) *LibraryHandler {
	return &LibraryHandler{library: uc}
}

// ListByUser 用户书架
// @Summary      用户书架
// @Tags         书架
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {array}  library.Entry
// @Failure      500 {object} response.ErrorBody
// @Router       /api/users/{id}/library [get]
func (h *LibraryHandler) ListByUser(c *gin.Context) {
	userID, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.library.ListByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

// Save 加入书架
// @Summary      加入书架
// @Description  已在书架中时只更新has_read
// @Tags         书架
// @Accept       json
// @Produce      json
// @Param        request body dto.LibraryRequest true "书架条目"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/library [post]
func (h *LibraryHandler) Save(c *gin.Context) {
	var req dto.LibraryRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	err := h.library.Save(c.Request.Context(), library.Entry{
		UserID:  req.UserID,
		BookID:  req.BookID,
		HasRead: req.HasRead,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Library updated successfully")
}

// Remove 移出书架
// @Summary      移出书架
// @Tags         书架
// @Produce      json
// @Param        userID path int true "用户ID"
// @Param        bookID path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/library/{userID}/{bookID} [delete]
func (h *LibraryHandler) Remove(c *gin.Context) {
	userID, err := pathID(c, "userID")
	if err != nil {
		response.Error(c, err)
		return
	}
	bookID, err := pathID(c, "bookID")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.library.Remove(c.Request.Context(), userID, bookID); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Library entry removed successfully")
}
