package mysql

import (
	"time"
)

// UserModel 用户表(管理员账号)
type UserModel struct {
	ID        uint      `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;size:100;not null;comment:姓名"`
	Email     string    `gorm:"column:email;uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"column:password;size:255;not null;comment:密码(bcrypt)"`
	Role      string    `gorm:"column:role;size:20;not null;index;comment:角色"`
	CreatedAt time.Time `gorm:"column:createdAt;comment:创建时间"`
}

func (UserModel) TableName() string {
	return "users"
}

// BookModel 图书表
// 列名沿用前端约定的驼峰命名(coverImage、createdAt)
// Price以DECIMAL存储,读出为字符串后在toBookEntity中还原为浮点数
// Featured以TINYINT(1)存储
type BookModel struct {
	ID          uint      `gorm:"primaryKey;column:id"`
	Title       string    `gorm:"column:title;size:255;not null;comment:书名"`
	Author      string    `gorm:"column:author;size:255;not null;comment:作者"`
	Price       string    `gorm:"column:price;type:decimal(10,2);not null;comment:价格"`
	Category    string    `gorm:"column:category;size:100;not null;index;comment:分类"`
	Description *string   `gorm:"column:description;type:text;comment:描述"`
	CoverImage  *string   `gorm:"column:coverImage;size:500;comment:封面图片URL"`
	Featured    int8      `gorm:"column:featured;type:tinyint(1);not null;default:0;comment:是否推荐"`
	CreatedAt   time.Time `gorm:"column:createdAt;index;comment:创建时间"`
}

func (BookModel) TableName() string {
	return "books"
}

// OrderModel 订单表
type OrderModel struct {
	ID              uint             `gorm:"primaryKey"`
	OrderNo         string           `gorm:"uniqueIndex;size:32;not null;comment:订单号"`
	CustomerName    string           `gorm:"size:100;not null;comment:收货人"`
	CustomerEmail   string           `gorm:"size:100;not null;index;comment:联系邮箱"`
	ShippingAddress string           `gorm:"size:500;not null;comment:收货地址"`
	Total           int64            `gorm:"not null;comment:订单总金额(分)"`
	Status          int              `gorm:"index;type:tinyint;not null;default:1;comment:订单状态(1待支付2已支付3已发货4已完成5已取消)"`
	Items           []OrderItemModel `gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time        `gorm:"index;comment:创建时间"`
	UpdatedAt       time.Time        `gorm:"comment:更新时间"`
}

func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel 订单明细表
type OrderItemModel struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"index;not null;comment:订单ID"`
	BookID   uint   `gorm:"index;not null;comment:图书ID"`
	Title    string `gorm:"size:255;not null;comment:下单时书名"`
	Quantity int    `gorm:"not null;comment:购买数量"`
	Price    int64  `gorm:"not null;comment:下单时单价(分)"`
}

func (OrderItemModel) TableName() string {
	return "order_items"
}
