package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/AhmadAyoub1/bookstore-backend-render/internal/application/order"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/interface/http/dto"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	createOrder  *apporder.CreateOrderUseCase
	listOrders   *apporder.ListOrdersUseCase
	getOrder     *apporder.GetOrderUseCase
	updateStatus *apporder.UpdateOrderStatusUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	createOrder *apporder.CreateOrderUseCase,
	listOrders *apporder.ListOrdersUseCase,
	getOrder *apporder.GetOrderUseCase,
	updateStatus *apporder.UpdateOrderStatusUseCase,
) *OrderHandler {
	return &OrderHandler{
		createOrder:  createOrder,
		listOrders:   listOrders,
		getOrder:     getOrder,
		updateStatus: updateStatus,
	}
}

// CreateOrder 下单
// @Summary      下单
// @Description  游客下单,价格以下单时的目录价格为准
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateOrderRequest true "订单信息"
// @Success      201 {object} apporder.OrderView
// @Failure      400 {object} response.ErrorBody "参数错误(如数量超过999)"
// @Failure      404 {object} response.ErrorBody "Book not found"
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.createOrder.Execute(c.Request.Context(), req.ToApp())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// ListOrders 订单列表
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array}  apporder.OrderView
// @Failure      401 {object} response.ErrorBody
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.listOrders.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, orders)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} apporder.OrderView
// @Failure      401 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Order not found"
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	o, err := h.getOrder.Execute(c.Request.Context(), idParam(c, "id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, o)
}

// UpdateStatus 修改订单状态
// @Summary      修改订单状态
// @Description  pending→paid|cancelled, paid→shipped|cancelled, shipped→completed
// @Tags         订单
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                          true "订单ID"
// @Param        request body dto.UpdateOrderStatusRequest true "目标状态"
// @Success      200 {object} apporder.OrderView
// @Failure      400 {object} response.ErrorBody
// @Failure      401 {object} response.ErrorBody
// @Failure      404 {object} response.ErrorBody "Order not found"
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if err := bind(c, &req); err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.updateStatus.Execute(c.Request.Context(), idParam(c, "id"), req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, o)
}
