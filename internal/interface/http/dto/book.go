package dto

import (
	"encoding/json"
	"strconv"

	appbook "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/book"
)

// BookRequest JSON格式的创建/更新请求
// 所有字段保留原始JSON类型:价格和推荐由领域服务按规则转换,
// 文本字段由textValue转成字符串(如"title": 123存为"123")
// 不使用binding:"required":缺字段时要返回业务错误信息而不是绑定错误
type BookRequest struct {
	Title       interface{} `json:"title" swaggertype:"string" example:"Dune"`
	Author      interface{} `json:"author" swaggertype:"string" example:"Frank Herbert"`
	Price       interface{} `json:"price" swaggertype:"number" example:"12.5"`
	Category    interface{} `json:"category" swaggertype:"string" example:"Fiction"`
	Description interface{} `json:"description" swaggertype:"string" example:"Desert planet epic"`
	CoverImage  interface{} `json:"coverImage" swaggertype:"string" example:"https://example.com/dune.jpg"`
	Featured    interface{} `json:"featured" swaggertype:"boolean" example:"false"`
}

// ToApp HTTP DTO → 应用层请求
func (r BookRequest) ToApp() appbook.BookRequest {
	return appbook.BookRequest{
		Title:       textValue(r.Title),
		Author:      textValue(r.Author),
		Price:       r.Price,
		Category:    textValue(r.Category),
		Description: textValue(r.Description),
		CoverImage:  textValue(r.CoverImage),
		Featured:    r.Featured,
	}
}

// textValue 把JSON值转成文本列的内容
// 无值(null、""、0、false)返回空串,交给领域服务按缺字段处理;
// 数字按最短十进制表示,true为"true",对象和数组按JSON原文保存
func textValue(v interface{}) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "true"
		}
		return ""
	case float64:
		if x == 0 {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

// BookForm 表单格式(application/x-www-form-urlencoded、multipart/form-data)的创建/更新请求
// 表单值都是字符串,空字符串按未提交处理
type BookForm struct {
	Title       string `form:"title"`
	Author      string `form:"author"`
	Price       string `form:"price"`
	Category    string `form:"category"`
	Description string `form:"description"`
	CoverImage  string `form:"coverImage"`
	Featured    string `form:"featured"`
}

// ToApp HTTP DTO → 应用层请求
func (f BookForm) ToApp() appbook.BookRequest {
	return appbook.BookRequest{
		Title:       f.Title,
		Author:      f.Author,
		Price:       f.Price,
		Category:    f.Category,
		Description: f.Description,
		CoverImage:  f.CoverImage,
		Featured:    f.Featured,
	}
}

// ListBooksQuery 图书列表查询参数
type ListBooksQuery struct {
	Category string `form:"category"`
	Featured string `form:"featured"`
	Search   string `form:"search"`
}
