package order

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/book"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/cart"
	"github.com/AhmadAyoub1/bookstore-backend-render/internal/domain/order"
	"github.com/AhmadAyoub1/bookstore-backend-render/pkg/metrics"
)

// Transactor 事务执行器,由*mysql.TxManager实现
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookReader 读取下单时的图书价格和书名
type BookReader interface {
	Get(ctx context.Context, id uint) (*book.Book, error)
}

// CreateOrderUseCase 下单用例(游客下单)
// 流程:
//  1. 校验收货信息
//  2. 明细来自请求的items,未提交items时读取cartId对应的购物车
//  3. 合并重复图书,校验数量
//  4. 事务内读取每本书的当前价格和书名作为快照,写入订单及明细
//  5. 订单保存后清空购物车(失败只记日志)
//
// 使用"下单时的价格"而非前端传递的价格,前端改价不影响订单金额
type CreateOrderUseCase struct {
	orderRepo order.Repository
	books     BookReader
	carts     cart.Store
	txManager Transactor
	now       func() time.Time
}

// NewCreateOrderUseCase 创建下单用例
func NewCreateOrderUseCase(
	orderRepo order.Repository,
	books BookReader,
	carts cart.Store,
	txManager Transactor,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo: orderRepo,
		books:     books,
		carts:     carts,
		txManager: txManager,
		now:       time.Now,
	}
}

// CreateOrderRequest 下单请求
type CreateOrderRequest struct {
	CustomerName    string
	CustomerEmail   string
	ShippingAddress string
	Items           []CreateOrderItem
	CartID          string // 可选,提交时下单成功后清空该购物车
}

// CreateOrderItem 订单明细项
type CreateOrderItem struct {
	BookID   uint
	Quantity int
}

// Execute 执行下单用例
func (uc *CreateOrderUseCase) Execute(ctx context.Context, req CreateOrderRequest) (*OrderView, error) {
	customer := order.Customer{
		Name:            req.CustomerName,
		Email:           req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
	}
	if err := customer.Validate(); err != nil {
		return nil, err
	}

	lines, err := uc.collectLines(ctx, req)
	if err != nil {
		return nil, err
	}
	lines, err = order.NormalizeLines(lines)
	if err != nil {
		return nil, err
	}

	var result *order.Order
	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		items := make([]order.Item, len(lines))
		for i, l := range lines {
			b, err := uc.books.Get(txCtx, l.BookID)
			if err != nil {
				return err
			}
			items[i] = order.Item{
				BookID:   b.ID,
				Title:    b.Title,
				Quantity: l.Quantity,
				Price:    order.ToCents(b.Price),
			}
		}

		o := order.NewOrder(order.GenerateOrderNo(uc.now()), customer, items)
		if err := uc.orderRepo.Create(txCtx, o); err != nil {
			return err
		}
		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordOrderPlaced(result.Total)

	if req.CartID != "" {
		if err := uc.carts.Clear(ctx, req.CartID); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("cart_id", req.CartID).Str("order_no", result.OrderNo).
				Msg("下单后清空购物车失败")
		}
	}

	view := NewOrderView(result)
	return &view, nil
}

// collectLines 请求明细优先,其次购物车
func (uc *CreateOrderUseCase) collectLines(ctx context.Context, req CreateOrderRequest) ([]order.Line, error) {
	if req.CartID != "" {
		if err := cart.ValidateID(req.CartID); err != nil {
			return nil, err
		}
	}

	if len(req.Items) > 0 {
		lines := make([]order.Line, len(req.Items))
		for i, item := range req.Items {
			lines[i] = order.Line{BookID: item.BookID, Quantity: item.Quantity}
		}
		return lines, nil
	}

	if req.CartID == "" {
		return nil, order.ErrEmptyOrder
	}
	cartLines, err := uc.carts.Lines(ctx, req.CartID)
	if err != nil {
		return nil, err
	}
	lines := make([]order.Line, len(cartLines))
	for i, l := range cartLines {
		lines[i] = order.Line{BookID: l.BookID, Quantity: l.Quantity}
	}
	return lines, nil
}
