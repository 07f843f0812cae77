package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/cart"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/dto"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// CartHandler 购物车HTTP处理器
// cartId由客户端生成并保存(如localStorage),不需要登录
type CartHandler struct {
	carts *appcart.Service
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(carts *appcart.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get 查看购物车
// @Summary      查看购物车
// @Tags         购物车
// @Produce      json
// @Param        cartId path string true "购物车标识"
// @Success      200 {object} appcart.CartView
// @Failure      400 {object} response.ErrorBody "Invalid cart id"
// @Router       /api/cart/{cartId} [get]
func (h *CartHandler) Get(c *gin.Context) {
	view, err := h.carts.View(c.Request.Context(), c.Param("cartId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// AddItem 加入购物车
// @Summary      加入购物车
// @Description  同一本书重复加入时数量累加,单本上限999
// @Tags         购物车
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        cartId  path string                 true "购物车标识"
// @Param        request body dto.AddCartItemRequest true "图书和数量"
// @Success      200 {object} appcart.CartView
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/cart/{cartId}/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.carts.AddItem(c.Request.Context(), c.Param("cartId"), req.BookID, req.QuantityOrDefault())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// SetItem 修改数量
// @Summary      修改购物车数量
// @Tags         购物车
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        cartId  path string                 true "购物车标识"
// @Param        bookId  path int                    true "图书ID"
// @Param        request body dto.SetCartItemRequest true "数量"
// @Success      200 {object} appcart.CartView
// @Failure      400 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/cart/{cartId}/items/{bookId} [put]
func (h *CartHandler) SetItem(c *gin.Context) {
	var req dto.SetCartItemRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	view, err := h.carts.SetItem(c.Request.Context(), c.Param("cartId"), idParam(c, "bookId"), req.Quantity)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// RemoveItem 移除一行
// @Summary      移除购物车中的图书
// @Tags         购物车
// @Produce      json
// @Param        cartId path string true "购物车标识"
// @Param        bookId path int    true "图书ID"
// @Success      200 {object} appcart.CartView
// @Failure      400 {object} response.ErrorBody
// @Router       /api/cart/{cartId}/items/{bookId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	view, err := h.carts.RemoveItem(c.Request.Context(), c.Param("cartId"), idParam(c, "bookId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// Clear 清空购物车
// @Summary      清空购物车
// @Tags         购物车
// @Produce      json
// @Param        cartId path string true "购物车标识"
// @Success      200 {object} response.MessageBody
// @Failure      400 {object} response.ErrorBody
// @Router       /api/cart/{cartId} [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.carts.Clear(c.Request.Context(), c.Param("cartId")); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Cart cleared")
}
