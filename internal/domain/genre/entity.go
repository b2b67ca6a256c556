package genre

// Genre 图书类型
type Genre struct {
	ID   uint   `json:"genreID"`
	Name string `json:"genre_name"`
}
