package repository

import (
	"errors"

	"github.com/xihu-next/internal/models"

	"gorm.io/gorm"
)

// HotelOrderRepository 酒店订单数据访问接口
type HotelOrderRepository interface {
	List(filter HotelOrderListFilter) ([]models.HotelOrder, int64, error)
	GetByID(id uint) (*models.HotelOrder, error)
	GetByOrderNo(orderNo string) (*models.HotelOrder, error)
	Create(order *models.HotelOrder) error
	UpdateStatus(id uint, from, to string) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) HotelOrderRepository
}

// GormHotelOrderRepository GORM 实现
type GormHotelOrderRepository struct {
	db *gorm.DB
}

// NewHotelOrderRepository 创建酒店订单仓库
func NewHotelOrderRepository(db *gorm.DB) *GormHotelOrderRepository {
	return &GormHotelOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormHotelOrderRepository) WithTx(tx *gorm.DB) HotelOrderRepository {
	if tx == nil {
		return r
	}
	return &GormHotelOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormHotelOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 酒店订单列表
func (r *GormHotelOrderRepository) List(filter HotelOrderListFilter) ([]models.HotelOrder, int64, error) {
	var orders []models.HotelOrder

	query := r.db.Model(&models.HotelOrder{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetByID 根据 ID 获取订单，未找到返回 nil
func (r *GormHotelOrderRepository) GetByID(id uint) (*models.HotelOrder, error) {
	var order models.HotelOrder
	if err := r.db.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo 根据订单号获取订单，未找到返回 nil
func (r *GormHotelOrderRepository) GetByOrderNo(orderNo string) (*models.HotelOrder, error) {
	var order models.HotelOrder
	if err := r.db.Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create 创建订单
func (r *GormHotelOrderRepository) Create(order *models.HotelOrder) error {
	return r.db.Create(order).Error
}

// UpdateStatus 条件更新状态，返回受影响行数（0 表示状态已变更）
func (r *GormHotelOrderRepository) UpdateStatus(id uint, from, to string) (int64, error) {
	result := r.db.Model(&models.HotelOrder{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}
