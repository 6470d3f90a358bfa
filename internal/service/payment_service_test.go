package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"
)

func setupPaymentServiceTest(t *testing.T) (*PaymentService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.PaymentBill{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return NewPaymentService(repository.NewPaymentBillRepository(db)), db
}

func TestGenerateForPeriodIsIdempotent(t *testing.T) {
	svc, _ := setupPaymentServiceTest(t)

	items := map[string]models.Money{
		constants.BillTypeWater:    mustMoney(t, "45.20"),
		constants.BillTypeElectric: mustMoney(t, "182.66"),
	}
	created, err := svc.GenerateForPeriod(1, "2026-08", items)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if created != 2 {
		t.Fatalf("expected 2 bills created, got %d", created)
	}

	// 同账期重复生成不再新增
	created, err = svc.GenerateForPeriod(1, "2026-08", items)
	if err != nil {
		t.Fatalf("second generate failed: %v", err)
	}
	if created != 0 {
		t.Fatalf("regeneration must be idempotent, created %d", created)
	}

	// 未知缴费类型直接跳过
	created, err = svc.GenerateForPeriod(1, "2026-08", map[string]models.Money{"UNKNOWN": mustMoney(t, "1.00")})
	if err != nil || created != 0 {
		t.Fatalf("unknown bill type should be skipped: created=%d err=%v", created, err)
	}
}

func TestPayBillValidatesAmountAndStatus(t *testing.T) {
	svc, db := setupPaymentServiceTest(t)

	if _, err := svc.GenerateForPeriod(1, "2026-08", map[string]models.Money{
		constants.BillTypeWater: mustMoney(t, "45.20"),
	}); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	var bill models.PaymentBill
	if err := db.First(&bill).Error; err != nil {
		t.Fatalf("load bill failed: %v", err)
	}

	if _, err := svc.Pay(2, bill.ID, mustMoney(t, "45.20")); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("other users must not pay, got %v", err)
	}
	if _, err := svc.Pay(1, bill.ID, mustMoney(t, "10.00")); !errors.Is(err, ErrBillAmountMismatch) {
		t.Fatalf("expected ErrBillAmountMismatch, got %v", err)
	}

	paid, err := svc.Pay(1, bill.ID, mustMoney(t, "45.20"))
	if err != nil {
		t.Fatalf("pay failed: %v", err)
	}
	if paid.Status != constants.BillStatusPaid || paid.PaidAt == nil {
		t.Fatalf("bill should be paid: %+v", paid)
	}

	if _, err := svc.Pay(1, bill.ID, mustMoney(t, "45.20")); !errors.Is(err, ErrBillNotPayable) {
		t.Fatalf("double pay should fail, got %v", err)
	}
}

func TestListMarksOverdueBills(t *testing.T) {
	svc, db := setupPaymentServiceTest(t)

	bill := models.PaymentBill{
		UserID:     1,
		BillNumber: "BLW202607010000",
		BillType:   constants.BillTypeWater,
		TypeName:   "水费",
		BillPeriod: "2026-06",
		BillAmount: mustMoney(t, "30.00"),
		DueDate:    time.Now().Add(-48 * time.Hour),
		Status:     constants.BillStatusPending,
	}
	if err := db.Create(&bill).Error; err != nil {
		t.Fatalf("seed bill failed: %v", err)
	}

	bills, total, err := svc.ListByUser(1, repository.BillListFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(bills) != 1 {
		t.Fatalf("expected 1 bill, got %d", total)
	}
	if bills[0].Status != constants.BillStatusOverdue {
		t.Fatalf("past-due pending bill should become overdue, got %s", bills[0].Status)
	}

	// 逾期账单仍可缴纳
	if _, err := svc.Pay(1, bills[0].ID, mustMoney(t, "30.00")); err != nil {
		t.Fatalf("overdue bill should be payable: %v", err)
	}
}

func TestStatsAggregatesByStatus(t *testing.T) {
	svc, db := setupPaymentServiceTest(t)
	now := time.Now()

	paidAt := now
	seed := []models.PaymentBill{
		{
			UserID: 1, BillNumber: "BLW001", BillType: constants.BillTypeWater, TypeName: "水费",
			BillPeriod: "2026-08", BillAmount: mustMoney(t, "45.00"),
			DueDate: now.Add(72 * time.Hour), Status: constants.BillStatusPending,
		},
		{
			UserID: 1, BillNumber: "BLE001", BillType: constants.BillTypeElectric, TypeName: "电费",
			BillPeriod: "2026-07", BillAmount: mustMoney(t, "120.50"),
			DueDate: now.Add(-72 * time.Hour), Status: constants.BillStatusPending,
		},
		{
			UserID: 1, BillNumber: "BLG001", BillType: constants.BillTypeGas, TypeName: "燃气费",
			BillPeriod: "2026-08", BillAmount: mustMoney(t, "60.00"),
			PaidAmount: mustMoney(t, "60.00"), PaidAt: &paidAt,
			DueDate: now.Add(72 * time.Hour), Status: constants.BillStatusPaid,
		},
		// 其他用户的账单不计入
		{
			UserID: 2, BillNumber: "BLW002", BillType: constants.BillTypeWater, TypeName: "水费",
			BillPeriod: "2026-08", BillAmount: mustMoney(t, "99.00"),
			DueDate: now.Add(72 * time.Hour), Status: constants.BillStatusPending,
		},
	}
	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			t.Fatalf("seed bill failed: %v", err)
		}
	}

	stats, err := svc.Stats(1)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.PendingCount != 2 {
		t.Fatalf("expected 2 pending bills (incl. overdue), got %d", stats.PendingCount)
	}
	if stats.OverdueCount != 1 {
		t.Fatalf("expected 1 overdue bill, got %d", stats.OverdueCount)
	}
	if stats.PendingAmount.String() != "165.50" {
		t.Fatalf("unexpected pending amount: %s", stats.PendingAmount)
	}
	if stats.PaidThisMonth.String() != "60.00" {
		t.Fatalf("unexpected paid-this-month amount: %s", stats.PaidThisMonth)
	}
}
