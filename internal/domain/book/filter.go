package book

import (
	"strings"
)

// Filter 图书列表查询条件
// 三个条件都是可选的,同时出现时取交集(AND)
type Filter struct {
	Category string // 分类,精确匹配
	Featured string // 仅字面量"true"生效
	Search   string // 在标题/作者/分类中做不区分大小写的子串匹配
}

// Predicate 一个带占位符的查询条件及其参数
// Clause只引用books表的列名,参数一律通过Args绑定,不拼接用户输入
type Predicate struct {
	Clause string
	Args   []interface{}
}

const searchClause = "(LOWER(title) LIKE ? OR LOWER(author) LIKE ? OR LOWER(category) LIKE ?)"

// Predicates 把Filter转换为有序的谓词列表
// 顺序固定为 category → featured → search,空Filter返回空列表(查全部)
func (f Filter) Predicates() []Predicate {
	preds := make([]Predicate, 0, 3)

	if f.Category != "" {
		preds = append(preds, Predicate{Clause: "category = ?", Args: []interface{}{f.Category}})
	}

	if f.Featured == "true" {
		preds = append(preds, Predicate{Clause: "featured = ?", Args: []interface{}{true}})
	}

	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		preds = append(preds, Predicate{Clause: searchClause, Args: []interface{}{term, term, term}})
	}

	return preds
}
