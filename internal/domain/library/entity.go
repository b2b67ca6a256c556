package library

// Entry 用户书架条目(user_library表,联合主键userID+bookID)
type Entry struct {
	UserID   uint   `json:"userID"`
	BookID   uint   `json:"bookID"`
	BookName string `json:"bookName,omitempty"`
	HasRead  bool   `json:"has_read"`
}
