package models

import (
	"time"

	"gorm.io/gorm"
)

// HotelOrder 酒店预订订单表
type HotelOrder struct {
	ID        uint           `gorm:"primarykey" json:"id"`                         // 主键
	OrderNo   string         `gorm:"uniqueIndex;not null;size:64" json:"order_no"` // 订单号
	UserID    uint           `gorm:"not null;index" json:"user_id"`                // 下单用户
	HotelID   uint           `gorm:"not null;index" json:"hotel_id"`               // 酒店 ID
	RoomID    uint           `gorm:"not null;index" json:"room_id"`                // 房型 ID
	RoomName  string         `gorm:"type:varchar(100)" json:"room_name"`           // 房型名称快照
	HotelName string         `gorm:"type:varchar(100)" json:"hotel_name"`          // 酒店名称快照
	HotelImg  string         `gorm:"type:varchar(500)" json:"hotel_img"`           // 酒店图片快照
	InDate    time.Time      `gorm:"not null" json:"in_date"`                      // 入住日期
	OutDate   time.Time      `gorm:"not null" json:"out_date"`                     // 离店日期
	Guests    int            `gorm:"not null;default:1" json:"guests"`             // 入住人数
	Name      string         `gorm:"type:varchar(50)" json:"name"`                 // 入住人姓名
	Tel       string         `gorm:"type:varchar(30)" json:"tel"`                  // 联系电话
	Notes     string         `gorm:"type:varchar(255)" json:"notes"`               // 备注
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 订单总价
	Status    string         `gorm:"type:varchar(20);index;default:'booked'" json:"status"` // 订单状态
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (HotelOrder) TableName() string {
	return "hotel_orders"
}
