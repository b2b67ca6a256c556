package author

// Author 作者实体
type Author struct {
	ID   uint   `json:"authorID"`
	Name string `json:"author_name"`
}
