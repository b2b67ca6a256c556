package handler

import (
	"github.com/gin-gonic/gin"

	appgenre "github.com/xiebiao/bookcatalog/internal/application/genre"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// GenreHandler 类型HTTP处理器
type GenreHandler struct {
	genres *appgenre.UseCase
}

// NewGenreHandler 创建类型处理器
func NewGenreHandler(genres *appgenre.UseCase) *GenreHandler {
	return &GenreHandler{genres: genres}
}

// List 类型列表
// @Summary      类型列表
// @Tags         类型
// @Produce      json
// @Success      200 {array}  genre.Genre
// @Failure      500 {object} response.ErrorBody
// @Router       /api/genres [get]
func (h *GenreHandler) List(c *gin.Context) {
	genres, err := h.genres.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, genres)
}

// Add 新增类型
// @Summary      新增类型
// @Tags         类型
// @Accept       json
// @Produce      json
// @Param        request body dto.GenreRequest true "类型"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/genres [post]
func (h *GenreHandler) Add(c *gin.Context) {
	var req dto.GenreRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.genres.Add(c.Request.Context(), req.GenreName); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Genre added successfully")
}

// Delete 删除类型
// @Summary      删除类型
// @Description  先把该类型图书的genre_id置为NULL再删除,两步在同一事务中
// @Tags         类型
// @Produce      json
// @Param        id path int true "类型ID"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/genres/{id} [delete]
func (h *GenreHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.genres.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Genre deleted successfully")
}
