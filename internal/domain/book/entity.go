package book

import (
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Price对外是浮点数(元),存储层为DECIMAL(10,2)
// 2. Description/CoverImage可为空,nil序列化为JSON null
// 3. ID和CreatedAt由存储层生成,创建后不再修改
type Book struct {
	ID          uint
	Title       string
	Author      string
	Price       float64
	Category    string
	Description *string
	CoverImage  *string
	Featured    bool
	CreatedAt   time.Time
}

// Fields 创建/更新图书时客户端提交的原始字段
// Price和Featured保留原始类型(JSON数字/字符串/布尔),由Service按规则转换
type Fields struct {
	Title       string
	Author      string
	Price       interface{}
	Category    string
	Description string
	CoverImage  string
	Featured    interface{}
}

// newBook 由已校验的字段构造图书
// 空字符串的描述和封面存为NULL
func newBook(f Fields, price float64) *Book {
	return &Book{
		Title:       f.Title,
		Author:      f.Author,
		Price:       price,
		Category:    f.Category,
		Description: nullable(f.Description),
		CoverImage:  nullable(f.CoverImage),
		Featured:    coerceFeatured(f.Featured),
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
