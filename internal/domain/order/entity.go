package order

import (
	"math"
	"net/mail"
	"strings"
	"time"
)

// Status 订单状态
type Status int

const (
	StatusPending   Status = 1 // 待支付
	StatusPaid      Status = 2 // 已支付
	StatusShipped   Status = 3 // 已发货
	StatusCompleted Status = 4 // 已完成
	StatusCancelled Status = 5 // 已取消
)

var statusNames = map[Status]string{
	StatusPending:   "pending",
	StatusPaid:      "paid",
	StatusShipped:   "shipped",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
}

// String 状态名(同时是API中的取值)
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStatus 解析API提交的状态名
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if n == name {
			return s, nil
		}
	}
	return 0, ErrInvalidStatus
}

// transitions 状态机:待支付→已支付/已取消,已支付→已发货/已取消,已发货→已完成
var transitions = map[Status][]Status{
	StatusPending:   {StatusPaid, StatusCancelled},
	StatusPaid:      {StatusShipped, StatusCancelled},
	StatusShipped:   {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// MaxQuantity 单行最大购买数量
const MaxQuantity = 999

// Customer 下单人信息(游客下单,不关联用户账号)
type Customer struct {
	Name            string
	Email           string
	ShippingAddress string
}

// Validate 校验下单人信息
func (c Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.ShippingAddress) == "" {
		return ErrMissingCustomer
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

// Line 客户端提交的一行购买请求
type Line struct {
	BookID   uint
	Quantity int
}

// Item 订单明细
// Title和Price是下单时的快照,之后改价/改名不影响历史订单
type Item struct {
	BookID   uint
	Title    string
	Quantity int
	Price    int64 // 单价(分)
}

// Order 订单(聚合根)
type Order struct {
	ID        uint
	OrderNo   string
	Customer  Customer
	Total     int64 // 总金额(分)
	Status    Status
	Items     []Item
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewOrder 创建待支付订单,总金额由明细计算
func NewOrder(orderNo string, customer Customer, items []Item) *Order {
	o := &Order{
		OrderNo:  orderNo,
		Customer: customer,
		Status:   StatusPending,
		Items:    items,
	}
	o.Total = o.CalculateTotal()
	return o
}

// CanTransitionTo 判断是否允许切换到目标状态
func (o *Order) CanTransitionTo(target Status) bool {
	for _, allowed := range transitions[o.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo 切换状态(违反状态机返回ErrInvalidStatusTransition)
func (o *Order) TransitionTo(target Status) error {
	if !o.CanTransitionTo(target) {
		return ErrInvalidStatusTransition
	}
	o.Status = target
	return nil
}

// CalculateTotal 计算明细合计(分)
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// NormalizeLines 校验数量并合并同一本书的多行
// 合并后顺序按每本书第一次出现的位置
func NormalizeLines(lines []Line) ([]Line, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}

	merged := make([]Line, 0, len(lines))
	index := make(map[uint]int, len(lines))
	for _, l := range lines {
		if l.BookID == 0 {
			return nil, ErrInvalidBook
		}
		if l.Quantity < 1 || l.Quantity > MaxQuantity {
			return nil, ErrInvalidQuantity
		}
		if i, ok := index[l.BookID]; ok {
			merged[i].Quantity += l.Quantity
			if merged[i].Quantity > MaxQuantity {
				return nil, ErrInvalidQuantity
			}
			continue
		}
		index[l.BookID] = len(merged)
		merged = append(merged, l)
	}
	return merged, nil
}

// ToCents 元转分(四舍五入)
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// FromCents 分转元
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
