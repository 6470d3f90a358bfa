package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentBill 生活缴费账单表
type PaymentBill struct {
	ID              uint           `gorm:"primarykey" json:"id"`                            // 主键
	UserID          uint           `gorm:"not null;index" json:"user_id"`                   // 账单所属用户
	BillNumber      string         `gorm:"uniqueIndex;not null;size:64" json:"bill_number"` // 账单编号
	BillType        string         `gorm:"type:varchar(20);index" json:"bill_type"`         // 缴费类型
	TypeName        string         `gorm:"type:varchar(50)" json:"type_name"`               // 类型展示名
	TypeIcon        string         `gorm:"type:varchar(255)" json:"type_icon"`              // 类型图标
	AccountName     string         `gorm:"type:varchar(100)" json:"account_name"`           // 缴费户名
	AccountNumber   string         `gorm:"type:varchar(64)" json:"account_number"`          // 缴费户号
	BillPeriod      string         `gorm:"type:varchar(20);index" json:"bill_period"`       // 账期（如 2026-08）
	BillAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"bill_amount"` // 应缴金额
	PaidAmount      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"paid_amount"` // 已缴金额
	DueDate         time.Time      `gorm:"index" json:"due_date"`                           // 缴费截止时间
	Status          string         `gorm:"type:varchar(20);index;default:'pending'" json:"status"` // 账单状态
	PaidAt          *time.Time     `json:"paid_at"`                                         // 缴费时间
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (PaymentBill) TableName() string {
	return "payment_bills"
}
