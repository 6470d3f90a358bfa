package models

import (
	"time"

	"gorm.io/gorm"
)

// User 用户表
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`                      // 主键
	Username     string         `gorm:"uniqueIndex;not null" json:"username"`      // 用户名
	PasswordHash string         `gorm:"not null" json:"-"`                         // 密码哈希
	Phone        string         `gorm:"type:varchar(20);index" json:"phone"`       // 手机号
	Email        string         `gorm:"type:varchar(255)" json:"email"`            // 邮箱
	Nickname     string         `gorm:"type:varchar(100)" json:"nickname"`         // 昵称
	Avatar       string         `gorm:"type:varchar(500)" json:"avatar"`           // 头像
	Status       int            `gorm:"not null;default:1;index" json:"status"`    // 状态（1=正常 0=禁用）
	LastLoginAt  *time.Time     `json:"last_login_at"`                             // 最后登录时间
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
