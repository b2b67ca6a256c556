package handler

import (
	"github.com/gin-gonic/gin"

	appreview "github.com/xiebiao/bookcatalog/internal/application/review"
	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// ReviewHandler 评论HTTP处理器
type ReviewHandler struct {
	reviews *appreview.UseCase
}

// NewReviewHandler 创建评论处理器
func NewReviewHandler(reviews *appreview.UseCase) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List 评论列表
// @Summary      评论列表
// @Description  附带用户名和书名
// @Tags         评论
// @Produce      json
// @Success      200 {array}  review.Row
// @Failure      500 {object} response.ErrorBody
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
	rows, err := h.reviews.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rows)
}

// Add 新增评论
// @Summary      新增评论
// @Description  用户名、书名在同一事务中解析为ID
// @Tags         评论
// @Accept       json
// @Produce      json
// @Param        request body dto.ReviewRequest true "评论"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/reviews [post]
func (h *ReviewHandler) Add(c *gin.Context) {
	var req dto.ReviewRequest
	if err := bindJSON(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	_, err := h.reviews.Add(c.Request.Context(), appreview.AddReviewRequest{
		Username:   req.UserName,
		BookName:   req.BookName,
		Rating:     int(req.Rating),
		Review:     req.Review,
		ReviewDate: req.ReviewDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Review added successfully")
}

// Delete 删除评论
// @Summary      删除评论
// @Tags         评论
// @Produce      json
// @Param        id path int true "评论ID"
// @Success      200 {object} response.MessageBody
// @Failure      500 {object} response.ErrorBody
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Review deleted successfully")
}
