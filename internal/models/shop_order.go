package models

import (
	"time"

	"gorm.io/gorm"
)

// ShopOrder 商城订单表
type ShopOrder struct {
	ID              uint           `gorm:"primarykey" json:"id"`                         // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null;size:64" json:"order_no"` // 订单号
	UserID          uint           `gorm:"not null;index" json:"user_id"`                // 下单用户
	TotalAmount     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总金额
	ShippingName    string         `gorm:"type:varchar(50)" json:"shipping_name"`        // 收货人姓名
	ShippingPhone   string         `gorm:"type:varchar(30)" json:"shipping_phone"`       // 收货人电话
	ShippingAddress string         `gorm:"type:varchar(255)" json:"shipping_address"`    // 收货地址
	Status          string         `gorm:"type:varchar(30);index;default:'pending_payment'" json:"status"` // 订单状态
	PaidAt          *time.Time     `json:"paid_at"`                                      // 支付时间
	ExpiredAt       *time.Time     `gorm:"index" json:"expired_at"`                      // 超时关闭时间
	Items           []ShopOrderItem `gorm:"foreignKey:OrderID" json:"items"`             // 订单明细
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (ShopOrder) TableName() string {
	return "shop_orders"
}

// ShopOrderItem 商城订单明细表
type ShopOrderItem struct {
	ID           uint      `gorm:"primarykey" json:"id"`               // 主键
	OrderID      uint      `gorm:"not null;index" json:"order_id"`     // 所属订单
	ProductID    uint      `gorm:"not null;index" json:"product_id"`   // 商品 ID
	ProductName  string    `gorm:"type:varchar(100)" json:"product_name"` // 商品名称快照
	ProductPrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"product_price"` // 下单时单价
	Quantity     int       `gorm:"not null;default:1" json:"quantity"` // 购买数量
	Subtotal     Money     `gorm:"type:decimal(20,2);not null;default:0" json:"subtotal"` // 小计
	CreatedAt    time.Time `json:"created_at"`
}

// TableName 指定表名
func (ShopOrderItem) TableName() string {
	return "shop_order_items"
}
