package book

// Book 图书实体
// 设计说明:
// 1. AuthorID/GenreID可为空：作者或类型被删除后引用置为NULL
// 2. 平均评分、评论数不落库，查询时由评论表的相关子查询计算(见Row)
type Book struct {
	ID       uint
	Name     string // 书名
	AuthorID *uint
	GenreID  *uint
	Synopsis string // 简介
}

// NewBook 创建新图书(工厂方法)
func NewBook(name string, authorID, genreID *uint, synopsis string) *Book {
	return &Book{
		Name:     name,
		AuthorID: authorID,
		GenreID:  genreID,
		Synopsis: synopsis,
	}
}

// Row 图书列表的一行(连接作者、类型并附带聚合值)
// AuthorName/GenreName为nil表示引用已被置空
// AvgRating为nil表示还没有评论
type Row struct {
	BookID     uint     `json:"bookID"`
	BookName   string   `json:"bookName"`
	AuthorName *string  `json:"authorName"`
	GenreName  *string  `json:"genreName"`
	Synopsis   string   `json:"synopsis"`
	AvgRating  *float64 `json:"avg_rating"`
	NumRating  int64    `json:"num_rating"`
}
