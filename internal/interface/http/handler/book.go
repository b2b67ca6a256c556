package handler

import (
	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// BookHandler 图书HTTP处理器
type BookHandler struct {
	books *appbook.UseCase
}

// NewBookHandler 创建图书处理器
func NewBookHandler(books *appbook.UseCase) *BookHandler {
	return &BookHandler{books: books}
}

// List 图书列表(可过滤)
// @Summary      图书列表
// @Description  类型之间为OR,其余条件之间为AND;avg_rating、num_rating为严格大于
// @Tags         图书
// @Produce      json
// @Param        genres[]   query []string false "类型名,可重复" collectionFormat(multi)
// @Param        bookName   query string   false "书名"
// @Param        authorName query string   false "作者名"
// @Param        avg_rating query number   false "平均评分下限(不含)"
// @Param        num_rating query number   false "评论数下限(不含)"
// @Success      200 {array}  book.Row
// @Failure      500 {object} response.ErrorBody "过滤参数非法或数据库错误"
// @Router       /api/books [get]
func (h *BookHandler) List(c *gin.Context) {
	rows, err := h.books.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

// Add 新增图书
// @Summary      新增图书
// @Description  作者名、类型名在同一事务中解析为ID;名称不存在时存NULL,该书不出现在列表中
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BookRequest true "图书信息"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books [post]
func (h *BookHandler) Add(c *gin.Context) {
	var req dto.BookRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	_, err := h.books.Add(c.Request.Context(), appbook.AddBookRequest{
		BookName:   req.BookName,
		AuthorName: req.AuthorName,
		GenreName:  req.GenreName,
		Synopsis:   req.Synopsis,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Book added successfully")
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.books.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Book deleted successfully")
}
