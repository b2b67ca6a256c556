package dto

// BookRequest 新增图书请求
// authorName/genreName按名称精确匹配(区分大小写),为空时不关联
type BookRequest struct {
	BookName   string `json:"bookName" example:"Dune"`
	AuthorName string `json:"authorName" example:"Frank Herbert"`
	GenreName  string `json:"genreName" example:"SciFi"`
	Synopsis   string `json:"synopsis" example:"A desert planet and its spice"`
}
