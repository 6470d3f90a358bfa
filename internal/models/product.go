package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                          // 主键
	Name        string         `gorm:"not null;index" json:"name"`                    // 商品名称
	PriceAmount Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"` // 价格金额
	Cover       string         `gorm:"type:varchar(500)" json:"cover"`                // 封面图片
	Images      StringArray    `gorm:"type:json" json:"images"`                       // 图片数组
	Stock       int            `gorm:"not null;default:0" json:"stock"`               // 库存
	Tags        StringArray    `gorm:"type:json" json:"tags"`                         // 标签数组
	Category    string         `gorm:"type:varchar(100);index" json:"category"`       // 分类
	Brand       string         `gorm:"type:varchar(100)" json:"brand"`                // 品牌
	SoldCount   int            `gorm:"not null;default:0" json:"sold_count"`          // 已售数量
	Description string         `gorm:"type:text" json:"description"`                  // 详情描述
	IsActive    bool           `gorm:"default:true;index" json:"is_active"`           // 是否上架
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`                       // 创建时间
	UpdatedAt   time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
