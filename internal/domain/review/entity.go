package review

// Review 评论实体
// 用户名或书名解析不到时对应ID为nil,列表查询不返回该评论
type Review struct {
	ID         uint
	UserID     *uint
	BookID     *uint
	Rating     int
	Body       string
	ReviewDate string // YYYY-MM-DD
}

// Row 评论列表的一行(用户名、书名已连接)
type Row struct {
	ReviewID   uint   `json:"reviewID"`
	Username   string `json:"username"`
	BookName   string `json:"bookName"`
	Rating     int    `json:"rating"`
	Review     string `json:"review"`
	ReviewDate string `json:"review_date"`
}
