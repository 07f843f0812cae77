package dto

// AddCartItemRequest 加入购物车
// quantity未提交时为1
type AddCartItemRequest struct {
	BookID   uint `json:"bookId" form:"bookId" example:"1"`
	Quantity *int `json:"quantity" form:"quantity" example:"1"`
}

// QuantityOrDefault 未提交数量时按1处理
func (r AddCartItemRequest) QuantityOrDefault() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// SetCartItemRequest 修改购物车数量
type SetCartItemRequest struct {
	Quantity int `json:"quantity" form:"quantity" example:"2"`
}
