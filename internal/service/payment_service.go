package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"
)

// PaymentService 生活缴费服务
type PaymentService struct {
	billRepo repository.PaymentBillRepository
}

// NewPaymentService 创建缴费服务
func NewPaymentService(billRepo repository.PaymentBillRepository) *PaymentService {
	return &PaymentService{billRepo: billRepo}
}

// billTypeMeta 缴费类型展示信息
type billTypeMeta struct {
	Name string
	Icon string
}

var billTypes = map[string]billTypeMeta{
	constants.BillTypeWater:    {Name: "水费", Icon: "/img/bill/water.png"},
	constants.BillTypeElectric: {Name: "电费", Icon: "/img/bill/electric.png"},
	constants.BillTypeGas:      {Name: "燃气费", Icon: "/img/bill/gas.png"},
	constants.BillTypeProperty: {Name: "物业费", Icon: "/img/bill/property.png"},
	constants.BillTypeInternet: {Name: "宽带费", Icon: "/img/bill/internet.png"},
	constants.BillTypeMobile:   {Name: "话费", Icon: "/img/bill/mobile.png"},
	constants.BillTypeTV:       {Name: "有线电视费", Icon: "/img/bill/tv.png"},
	constants.BillTypeParking:  {Name: "停车费", Icon: "/img/bill/parking.png"},
}

// SweepOverdue 把到期未缴的账单置为逾期
func (s *PaymentService) SweepOverdue(now time.Time) (int64, error) {
	return s.billRepo.MarkOverdueBefore(now)
}

// ListByUser 当前用户账单列表（先把过期待缴账单置为逾期）
func (s *PaymentService) ListByUser(userID uint, filter repository.BillListFilter) ([]models.PaymentBill, int64, error) {
	if _, err := s.billRepo.MarkOverdueBefore(time.Now()); err != nil {
		return nil, 0, err
	}
	filter.UserID = userID
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return s.billRepo.List(filter)
}

// BillStats 账单统计
type BillStats struct {
	PendingCount  int          `json:"pending_count"`
	PendingAmount models.Money `json:"pending_amount"`
	OverdueCount  int          `json:"overdue_count"`
	PaidThisMonth models.Money `json:"paid_this_month"`
}

// Stats 当前用户账单统计：待缴（含逾期）笔数与金额、逾期笔数、本月已缴金额
func (s *PaymentService) Stats(userID uint) (*BillStats, error) {
	now := time.Now()
	if _, err := s.billRepo.MarkOverdueBefore(now); err != nil {
		return nil, err
	}
	bills, _, err := s.billRepo.List(repository.BillListFilter{UserID: userID})
	if err != nil {
		return nil, err
	}

	stats := &BillStats{}
	pendingAmount := decimal.Zero
	paidThisMonth := decimal.Zero
	for _, bill := range bills {
		switch bill.Status {
		case constants.BillStatusPending:
			stats.PendingCount++
			pendingAmount = pendingAmount.Add(bill.BillAmount.Decimal)
		case constants.BillStatusOverdue:
			stats.PendingCount++
			stats.OverdueCount++
			pendingAmount = pendingAmount.Add(bill.BillAmount.Decimal)
		case constants.BillStatusPaid:
			if bill.PaidAt != nil && bill.PaidAt.Year() == now.Year() && bill.PaidAt.Month() == now.Month() {
				paidThisMonth = paidThisMonth.Add(bill.PaidAmount.Decimal)
			}
		}
	}
	stats.PendingAmount = models.NewMoneyFromDecimal(pendingAmount)
	stats.PaidThisMonth = models.NewMoneyFromDecimal(paidThisMonth)
	return stats, nil
}

// GetByUser 获取当前用户的账单详情
func (s *PaymentService) GetByUser(userID, billID uint) (*models.PaymentBill, error) {
	bill, err := s.billRepo.GetByID(billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrNotFound
	}
	if bill.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return bill, nil
}

// Pay 缴纳账单，金额必须与应缴金额一致
func (s *PaymentService) Pay(userID, billID uint, amount models.Money) (*models.PaymentBill, error) {
	bill, err := s.GetByUser(userID, billID)
	if err != nil {
		return nil, err
	}
	if bill.Status != constants.BillStatusPending && bill.Status != constants.BillStatusOverdue {
		return nil, ErrBillNotPayable
	}
	if !amount.Decimal.Equal(bill.BillAmount.Decimal) {
		return nil, ErrBillAmountMismatch
	}
	affected, err := s.billRepo.MarkPaid(bill.ID, amount, time.Now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBillNotPayable
	}
	return s.billRepo.GetByID(bill.ID)
}

// defaultMonthlyItems 未显式指定金额时生成的标准周期账单
func defaultMonthlyItems() map[string]models.Money {
	return map[string]models.Money{
		constants.BillTypeWater:    models.NewMoneyFromFloat(45.00),
		constants.BillTypeElectric: models.NewMoneyFromFloat(168.00),
		constants.BillTypeGas:      models.NewMoneyFromFloat(62.00),
		constants.BillTypeProperty: models.NewMoneyFromFloat(220.00),
	}
}

// GenerateForPeriod 为用户生成指定账期的周期账单（队列任务调用，幂等）
func (s *PaymentService) GenerateForPeriod(userID uint, period string, items map[string]models.Money) (int, error) {
	if period == "" {
		period = time.Now().Format("2006-01")
	}
	if len(items) == 0 {
		items = defaultMonthlyItems()
	}
	created := 0
	dueDate := periodDueDate(period)
	for billType, amount := range items {
		meta, ok := billTypes[billType]
		if !ok {
			continue
		}
		exists, err := s.billRepo.ExistsForPeriod(userID, billType, period)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}
		bill := &models.PaymentBill{
			UserID:     userID,
			BillNumber: generateBillNumber(billType),
			BillType:   billType,
			TypeName:   meta.Name,
			TypeIcon:   meta.Icon,
			BillPeriod: period,
			BillAmount: amount,
			DueDate:    dueDate,
			Status:     constants.BillStatusPending,
		}
		if err := s.billRepo.Create(bill); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// periodDueDate 账期缴费截止时间：次月 25 日
func periodDueDate(period string) time.Time {
	t, err := time.Parse("2006-01", period)
	if err != nil {
		t = time.Now()
	}
	return time.Date(t.Year(), t.Month()+1, 25, 23, 59, 59, 0, time.Local)
}

func generateBillNumber(billType string) string {
	return fmt.Sprintf("BL%s%s%s", billType[:1], time.Now().Format("20060102150405"), randNumeric(4))
}
