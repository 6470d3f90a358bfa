package models

import (
	"time"

	"gorm.io/gorm"
)

// Hotel 酒店表
type Hotel struct {
	ID        uint           `gorm:"primarykey" json:"id"`                    // 主键
	Name      string         `gorm:"not null;index" json:"name"`              // 酒店名称
	Content   string         `gorm:"type:text" json:"content"`                // 酒店介绍
	Img       string         `gorm:"type:varchar(500)" json:"img"`            // 封面图片
	Tel       string         `gorm:"type:varchar(30)" json:"tel"`             // 联系电话
	Address   string         `gorm:"type:varchar(255)" json:"address"`        // 详细地址
	Level     int            `gorm:"not null;default:0" json:"level"`         // 星级
	Score     float64        `gorm:"not null;default:0" json:"score"`         // 评分
	Province  string         `gorm:"type:varchar(50);index" json:"province"`  // 省份
	City      string         `gorm:"type:varchar(50);index" json:"city"`      // 城市
	MinPrice  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"min_price"` // 最低房价
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Hotel) TableName() string {
	return "hotels"
}

// HotelRoom 酒店房型表
type HotelRoom struct {
	ID        uint           `gorm:"primarykey" json:"id"`            // 主键
	HotelID   uint           `gorm:"not null;index" json:"hotel_id"`  // 所属酒店
	Name      string         `gorm:"not null" json:"name"`            // 房型名称
	Img       string         `gorm:"type:varchar(500)" json:"img"`    // 房型图片
	Content   string         `gorm:"type:text" json:"content"`        // 房型介绍
	Price     Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 每晚价格
	Full      bool           `gorm:"default:false" json:"full"`       // 是否满房
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (HotelRoom) TableName() string {
	return "hotel_rooms"
}
