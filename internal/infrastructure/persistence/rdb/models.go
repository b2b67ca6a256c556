package rdb

import (
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// GORM数据模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain层实体不依赖GORM，Repository负责两者转换
// 3. 图书对作者/类型、评论对用户/图书的引用只是普通列，不建数据库外键
// 4. 删除作者/类型时由仓储显式置空引用

// Date 日期列，取值为YYYY-MM-DD字符串
// MySQL建为DATE（parseTime=false时按字符串读回）；
// SQLite建为TEXT，go-sqlite3会把声明为DATE的列解析成time.Time
type Date string

// GormDBDataType 按方言决定列类型
func (Date) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	if db.Dialector.Name() == "sqlite" {
		return "text"
	}
	return "date"
}

// UserModel 用户表
type UserModel struct {
	ID       uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username string `gorm:"column:username;size:100"`
	Email    string `gorm:"column:email;size:255"`
	JoinDate Date   `gorm:"column:join_date"`
	Bio      string `gorm:"column:bio;type:text"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// AuthorModel 作者表
type AuthorModel struct {
	ID   uint   `gorm:"column:author_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:author_name;size:200;index:author_name_idx"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel 类型表
type GenreModel struct {
	ID   uint   `gorm:"column:genre_id;primaryKey;autoIncrement"`
	Name string `gorm:"column:genre_name;size:100;index:genres_idx"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// BookModel 图书表
// AuthorID/GenreID可为NULL
type BookModel struct {
	ID       uint   `gorm:"column:book_id;primaryKey;autoIncrement"`
	Name     string `gorm:"column:book_name;size:255;index:title_idx"`
	AuthorID *uint  `gorm:"column:author_id;index"`
	GenreID  *uint  `gorm:"column:genre_id;index"`
	Synopsis string `gorm:"column:synopsis;type:text"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReviewModel 评论表
// 评分索引服务于列表查询中的聚合子查询
type ReviewModel struct {
	ID         uint   `gorm:"column:review_id;primaryKey;autoIncrement;index:review_idx"`
	UserID     *uint  `gorm:"column:user_id;index"`
	BookID     *uint  `gorm:"column:book_id;index"`
	Rating     int    `gorm:"column:rating;index:rating_idx"`
	Review     string `gorm:"column:review;type:text"`
	ReviewDate Date   `gorm:"column:review_date"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}

// LibraryModel 用户书架（联合主键）
type LibraryModel struct {
	UserID  uint `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	BookID  uint `gorm:"column:book_id;primaryKey;autoIncrement:false"`
	HasRead bool `gorm:"column:has_read;not null"`
}

// TableName 指定表名
func (LibraryModel) TableName() string {
	return "user_library"
}
