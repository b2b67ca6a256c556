package dto

import (
	"encoding/json"
	"fmt"
)

// GenreRequest 新增类型请求
type GenreRequest struct {
	GenreName string `json:"genre_name" example:"Fantasy"`
}

// AuthorRequest 新增作者请求
type AuthorRequest struct {
	AuthorName string `json:"author_name" example:"Ursula K. Le Guin"`
}

// ReviewRequest 新增评论请求,用户与图书都按名称解析
type ReviewRequest struct {
	UserName   string `json:"userName" example:"ada"`
	BookName   string `json:"bookName" example:"Dune"`
	Rating     Rating `json:"rating" swaggertype:"integer" example:"4"`
	Review     string `json:"review" example:"Slow start, great ending"`
	ReviewDate string `json:"review_date" example:"2024-02-01"`
}

// Rating 评分,前端可能以数字或数字字符串("4")提交
type Rating int

// UnmarshalJSON 同时接受 4 和 "4"
func (r *Rating) UnmarshalJSON(data []byte) error {
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("rating must be an integer: %w", err)
	}
	if n == "" {
		*r = 0
		return nil
	}
	v, err := n.Int64()
	if err != nil {
		return fmt.Errorf("rating must be an integer: %w", err)
	}
	*r = Rating(v)
	return nil
}

// LibraryRequest 加入书架请求;已存在时更新has_read
type LibraryRequest struct {
	UserID  uint `json:"userID" binding:"required" example:"1"`
	BookID  uint `json:"bookID" binding:"required" example:"2"`
	HasRead bool `json:"has_read" example:"false"`
}
