package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/xihu-next/internal/cart"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"
)

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	svc := NewCartService(cart.NewMemoryStorage(), repository.NewProductRepository(db))
	return svc, db
}

func seedProduct(t *testing.T, db *gorm.DB, id uint, name string, price string, active bool) {
	t.Helper()
	p := models.Product{
		ID:          id,
		Name:        name,
		PriceAmount: mustMoney(t, price),
		Stock:       100,
		IsActive:    active,
	}
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
}

func mustMoney(t *testing.T, s string) models.Money {
	t.Helper()
	var m models.Money
	if err := m.UnmarshalJSON([]byte(`"` + s + `"`)); err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	return m
}

func TestCartServiceUpdateAndGet(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	seedProduct(t, db, 7, "保温杯", "39.90", true)
	ctx := context.Background()

	snap, err := svc.UpdateItem(ctx, "u1", 7, 2)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if snap.Count != 2 {
		t.Fatalf("expected count 2, got %d", snap.Count)
	}

	// 字符串形式的同一 ID 合并到同一条目
	snap, err = svc.UpdateItem(ctx, "u1", "7", 1)
	if err != nil {
		t.Fatalf("update by string id failed: %v", err)
	}
	if len(snap.Items) != 1 || snap.Items[0].Quantity != 3 {
		t.Fatalf("ids should converge to one entry: %+v", snap.Items)
	}

	// 重新加载走持久化槽位
	snap, err = svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if snap.Count != 3 || !snap.CheckoutEnabled {
		t.Fatalf("persisted cart should survive reload: %+v", snap)
	}
}

func TestCartServiceRejectsUnavailableProduct(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	seedProduct(t, db, 2, "下架商品", "5.00", false)
	ctx := context.Background()

	if _, err := svc.UpdateItem(ctx, "u1", 2, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable, got %v", err)
	}
	if _, err := svc.UpdateItem(ctx, "u1", 99, 1); !errors.Is(err, ErrProductNotAvailable) {
		t.Fatalf("expected ErrProductNotAvailable for missing product, got %v", err)
	}
	if _, err := svc.UpdateItem(ctx, "u1", "not-a-number", 1); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem, got %v", err)
	}

	// 失败的操作不得污染购物车
	snap, _ := svc.Get(ctx, "u1")
	if snap.Count != 0 {
		t.Fatalf("failed updates must not mutate cart: %+v", snap)
	}
}

func TestCartServiceMalformedBlobDegradesToEmpty(t *testing.T) {
	svc, _ := setupCartServiceTest(t)
	ctx := context.Background()

	storage := cart.NewMemoryStorage()
	svc.storage = storage
	if err := storage.Save(ctx, "u1", []byte("{broken")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	snap, err := svc.Get(ctx, "u1")
	if err != nil {
		t.Fatalf("get should not fail on malformed blob: %v", err)
	}
	if snap.Count != 0 {
		t.Fatalf("malformed blob should read as empty cart: %+v", snap)
	}
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	seedProduct(t, db, 12, "茶叶", "88.00", true)
	ctx := context.Background()

	if _, err := svc.UpdateItem(ctx, "u1", 12, 1); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	snap, err := svc.RemoveItem(ctx, "u1", "12")
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if snap.Count != 0 {
		t.Fatalf("remove by string form should delete entry: %+v", snap)
	}

	// 删除不存在的条目为幂等
	if _, err := svc.RemoveItem(ctx, "u1", 12); err != nil {
		t.Fatalf("idempotent remove failed: %v", err)
	}

	if _, err := svc.UpdateItem(ctx, "u1", 12, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	snap, err = svc.Clear(ctx, "u1")
	if err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if snap.Count != 0 || snap.CheckoutEnabled {
		t.Fatalf("cleared snapshot should be empty: %+v", snap)
	}
	snap, _ = svc.Get(ctx, "u1")
	if snap.Count != 0 {
		t.Fatalf("storage slot should be gone after clear: %+v", snap)
	}
}

func TestCartServiceCheckoutPayload(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	seedProduct(t, db, 1, "甲", "4.00", true)
	seedProduct(t, db, 2, "乙", "1.50", true)
	ctx := context.Background()

	if _, _, err := svc.CheckoutPayload(ctx, "u1"); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("empty cart should not be checkable: %v", err)
	}

	if _, err := svc.UpdateItem(ctx, "u1", 1, 2); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if _, err := svc.UpdateItem(ctx, "u1", 2, 1); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	items, total, err := svc.CheckoutPayload(ctx, "u1")
	if err != nil {
		t.Fatalf("checkout payload failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if total.StringFixed(2) != "9.50" {
		t.Fatalf("expected total 9.50, got %s", total)
	}
}
