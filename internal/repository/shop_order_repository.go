package repository

import (
	"errors"
	"time"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"

	"gorm.io/gorm"
)

// ShopOrderRepository 商城订单数据访问接口
type ShopOrderRepository interface {
	List(filter ShopOrderListFilter) ([]models.ShopOrder, int64, error)
	GetByID(id uint) (*models.ShopOrder, error)
	GetByOrderNo(orderNo string) (*models.ShopOrder, error)
	Create(order *models.ShopOrder) error
	UpdateStatus(tx *gorm.DB, id uint, from, to string) (int64, error)
	MarkPaid(id uint, paidAt time.Time) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ShopOrderRepository
}

// GormShopOrderRepository GORM 实现
type GormShopOrderRepository struct {
	db *gorm.DB
}

// NewShopOrderRepository 创建商城订单仓库
func NewShopOrderRepository(db *gorm.DB) *GormShopOrderRepository {
	return &GormShopOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormShopOrderRepository) WithTx(tx *gorm.DB) ShopOrderRepository {
	if tx == nil {
		return r
	}
	return &GormShopOrderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormShopOrderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// List 商城订单列表
func (r *GormShopOrderRepository) List(filter ShopOrderListFilter) ([]models.ShopOrder, int64, error) {
	var orders []models.ShopOrder

	query := r.db.Model(&models.ShopOrder{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.OrderNo != "" {
		query = query.Where("order_no = ?", filter.OrderNo)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// GetByID 根据 ID 获取订单（含明细），未找到返回 nil
func (r *GormShopOrderRepository) GetByID(id uint) (*models.ShopOrder, error) {
	var order models.ShopOrder
	if err := r.db.Preload("Items").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNo 根据订单号获取订单（含明细），未找到返回 nil
func (r *GormShopOrderRepository) GetByOrderNo(orderNo string) (*models.ShopOrder, error) {
	var order models.ShopOrder
	if err := r.db.Preload("Items").Where("order_no = ?", orderNo).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// Create 创建订单（级联写入明细）
func (r *GormShopOrderRepository) Create(order *models.ShopOrder) error {
	return r.db.Create(order).Error
}

// UpdateStatus 条件更新状态，返回受影响行数（0 表示状态已变更）
func (r *GormShopOrderRepository) UpdateStatus(tx *gorm.DB, id uint, from, to string) (int64, error) {
	db := r.db
	if tx != nil {
		db = tx
	}
	result := db.Model(&models.ShopOrder{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return result.RowsAffected, result.Error
}

// MarkPaid 标记订单支付完成
func (r *GormShopOrderRepository) MarkPaid(id uint, paidAt time.Time) (int64, error) {
	result := r.db.Model(&models.ShopOrder{}).
		Where("id = ? AND status = ?", id, constants.ShopOrderStatusPending).
		Updates(map[string]interface{}{
			"status":  constants.ShopOrderStatusPaid,
			"paid_at": paidAt,
		})
	return result.RowsAffected, result.Error
}
