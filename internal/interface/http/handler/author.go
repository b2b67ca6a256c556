package handler

import (
	"github.com/gin-gonic/gin"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// AuthorHandler 作者HTTP处理器
type AuthorHandler struct {
	authors *appauthor.UseCase
}

// NewAuthorHandler 创建作者处理器
func NewAuthorHandler(authors *appauthor.UseCase) *AuthorHandler {
	return &AuthorHandler{authors: authors}
}

// List 作者列表
// @Summary      作者列表
// @Tags         作者
// @Produce      json
// @Success      200 {array}  author.Author
// @Failure      500 {object} response.ErrorBody
// @Router       /api/authors [get]
func (h *AuthorHandler) List(c *gin.Context) {
	authors, err := h.authors.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, authors)
}

// Add 新增作者
// @Summary      新增作者
// @Tags         作者
// @Accept       json
// @Produce      json
// @Param        request body dto.AuthorRequest true "作者"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/authors [post]
func (h *AuthorHandler) Add(c *gin.Context) {
	var req dto.AuthorRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.authors.Add(c.Request.Context(), req.AuthorName); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Author added successfully")
}

// Delete 删除作者
// @Summary      删除作者
// @Description  先把该作者图书的author_id置为NULL再删除,两步在同一事务中
// @Tags         作者
// @Produce      json
// @Param        id path int true "作者ID"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/authors/{id} [delete]
func (h *AuthorHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.authors.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Author deleted successfully")
}
