package repository

import (
	"errors"
	"time"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"

	"gorm.io/gorm"
)

// PaymentBillRepository 缴费账单数据访问接口
type PaymentBillRepository interface {
	List(filter BillListFilter) ([]models.PaymentBill, int64, error)
	GetByID(id uint) (*models.PaymentBill, error)
	GetByBillNumber(billNumber string) (*models.PaymentBill, error)
	Create(bill *models.PaymentBill) error
	MarkPaid(id uint, amount models.Money, paidAt time.Time) (int64, error)
	MarkOverdueBefore(deadline time.Time) (int64, error)
	ExistsForPeriod(userID uint, billType, period string) (bool, error)
	WithTx(tx *gorm.DB) PaymentBillRepository
}

// GormPaymentBillRepository GORM 实现
type GormPaymentBillRepository struct {
	db *gorm.DB
}

// NewPaymentBillRepository 创建账单仓库
func NewPaymentBillRepository(db *gorm.DB) *GormPaymentBillRepository {
	return &GormPaymentBillRepository{db: db}
}

// WithTx 绑定事务
func (r *GormPaymentBillRepository) WithTx(tx *gorm.DB) PaymentBillRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentBillRepository{db: tx}
}

// List 账单列表
func (r *GormPaymentBillRepository) List(filter BillListFilter) ([]models.PaymentBill, int64, error) {
	var bills []models.PaymentBill

	query := r.db.Model(&models.PaymentBill{})
	if filter.UserID > 0 {
		query = query.Where("user_id = ?", filter.UserID)
	}
	if filter.BillType != "" {
		query = query.Where("bill_type = ?", filter.BillType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Period != "" {
		query = query.Where("bill_period = ?", filter.Period)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	if err := query.Order("due_date ASC, id ASC").Find(&bills).Error; err != nil {
		return nil, 0, err
	}

	return bills, total, nil
}

// GetByID 根据 ID 获取账单，未找到返回 nil
func (r *GormPaymentBillRepository) GetByID(id uint) (*models.PaymentBill, error) {
	var bill models.PaymentBill
	if err := r.db.First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

// GetByBillNumber 根据账单编号获取账单，未找到返回 nil
func (r *GormPaymentBillRepository) GetByBillNumber(billNumber string) (*models.PaymentBill, error) {
	var bill models.PaymentBill
	if err := r.db.Where("bill_number = ?", billNumber).First(&bill).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

// Create 创建账单
func (r *GormPaymentBillRepository) Create(bill *models.PaymentBill) error {
	return r.db.Create(bill).Error
}

// MarkPaid 条件标记缴费完成（仅待缴与逾期账单），返回受影响行数
func (r *GormPaymentBillRepository) MarkPaid(id uint, amount models.Money, paidAt time.Time) (int64, error) {
	result := r.db.Model(&models.PaymentBill{}).
		Where("id = ? AND status IN ?", id, []string{constants.BillStatusPending, constants.BillStatusOverdue}).
		Updates(map[string]interface{}{
			"status":      constants.BillStatusPaid,
			"paid_amount": amount,
			"paid_at":     paidAt,
		})
	return result.RowsAffected, result.Error
}

// MarkOverdueBefore 把截止时间已过的待缴账单批量置为逾期
func (r *GormPaymentBillRepository) MarkOverdueBefore(deadline time.Time) (int64, error) {
	result := r.db.Model(&models.PaymentBill{}).
		Where("status = ? AND due_date < ?", constants.BillStatusPending, deadline).
		Update("status", constants.BillStatusOverdue)
	return result.RowsAffected, result.Error
}

// ExistsForPeriod 判断同账期同类型账单是否已生成
func (r *GormPaymentBillRepository) ExistsForPeriod(userID uint, billType, period string) (bool, error) {
	var count int64
	err := r.db.Model(&models.PaymentBill{}).
		Where("user_id = ? AND bill_type = ? AND bill_period = ?", userID, billType, period).
		Count(&count).Error
	return count > 0, err
}
