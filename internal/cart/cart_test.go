package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/xihu-next/internal/constants"
)

func mustUpdate(t *testing.T, c *Cart, input ItemInput, delta int) {
	t.Helper()
	if err := c.UpdateQuantity(input, delta); err != nil {
		t.Fatalf("update quantity failed: %v", err)
	}
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestUpdateQuantityMergesNumericAndStringIDs(t *testing.T) {
	c := New()
	input := func(id interface{}) ItemInput {
		return ItemInput{ID: id, Name: "保温杯", Price: price("39.90")}
	}
	mustUpdate(t, c, input(7), 1)
	mustUpdate(t, c, input("7"), 2)
	mustUpdate(t, c, input(int64(7)), 1)

	if c.Len() != 1 {
		t.Fatalf("expected single entry, got %d", c.Len())
	}
	item, ok := c.Get("7")
	if !ok {
		t.Fatalf("entry not found by string id")
	}
	if item.Quantity != 4 {
		t.Fatalf("expected quantity 4, got %d", item.Quantity)
	}
}

func TestSnapshotTotals(t *testing.T) {
	c := New()
	mustUpdate(t, c, ItemInput{ID: 1, Name: "A", Price: price("10.00")}, 3)

	snap := c.Snapshot()
	if snap.Count != 3 {
		t.Fatalf("expected count 3, got %d", snap.Count)
	}
	if !snap.Total.Equal(price("30.00")) {
		t.Fatalf("expected total 30.00, got %s", snap.Total)
	}
	if len(snap.Items) != 1 || !snap.Items[0].Subtotal.Equal(price("30.00")) {
		t.Fatalf("unexpected snapshot items: %+v", snap.Items)
	}
	if !snap.CheckoutEnabled {
		t.Fatalf("checkout should be enabled for non-empty cart")
	}
}

func TestTargetModeSetsAbsoluteQuantity(t *testing.T) {
	c := New()
	input := ItemInput{ID: 3, Name: "A", Price: price("5.00")}
	mustUpdate(t, c, input, 2)
	mustUpdate(t, c, input, constants.CartTargetQuantityBase+5)

	item, ok := c.Get(3)
	if !ok {
		t.Fatalf("entry missing")
	}
	if item.Quantity != 5 {
		t.Fatalf("target mode should set quantity to 5, got %d", item.Quantity)
	}

	// 目标数量为 0 时删除条目
	mustUpdate(t, c, input, constants.CartTargetQuantityBase)
	if c.Len() != 0 {
		t.Fatalf("target quantity 0 should remove entry")
	}
}

func TestDecrementToZeroRemovesEntry(t *testing.T) {
	c := New()
	input := ItemInput{ID: 9, Name: "B", Price: price("2.50")}
	mustUpdate(t, c, input, 1)
	mustUpdate(t, c, input, -1)

	if c.Len() != 0 {
		t.Fatalf("expected empty cart, got %d entries", c.Len())
	}
	if snap := c.Snapshot(); snap.Count != 0 || snap.CheckoutEnabled {
		t.Fatalf("snapshot should be empty with checkout disabled: %+v", snap)
	}

	// 下限钳位到 0，不会出现负数量
	mustUpdate(t, c, input, 2)
	mustUpdate(t, c, input, -5)
	if c.Len() != 0 {
		t.Fatalf("over-decrement should clamp to 0 and remove entry")
	}
}

func TestUpdateQuantityRefreshesMetadata(t *testing.T) {
	c := New()
	mustUpdate(t, c, ItemInput{ID: 4, Name: "旧名", Price: price("8.00"), Cover: "/img/a.jpg"}, 1)
	mustUpdate(t, c, ItemInput{ID: 4, Name: "新名", Price: price("9.00")}, 1)

	item, _ := c.Get(4)
	if item.Name != "新名" || !item.UnitPrice.Equal(price("9.00")) {
		t.Fatalf("latest call should win: %+v", item)
	}
	if item.Cover != "/img/a.jpg" {
		t.Fatalf("missing cover should fall back to previous value, got %s", item.Cover)
	}

	mustUpdate(t, c, ItemInput{ID: 5, Name: "无图", Price: price("1.00")}, 1)
	item, _ = c.Get(5)
	if item.Cover != constants.DefaultProductCover {
		t.Fatalf("expected default cover, got %s", item.Cover)
	}
}

func TestUpdateQuantityRejectsMissingID(t *testing.T) {
	c := New()
	if err := c.UpdateQuantity(ItemInput{Name: "无 ID", Price: price("1.00")}, 1); err != ErrInvalidItem {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("failed update must not mutate cart")
	}
}

func TestRemoveHandlesEitherIdentifierForm(t *testing.T) {
	for _, id := range []interface{}{12, "12"} {
		c := New()
		mustUpdate(t, c, ItemInput{ID: id, Name: "C", Price: price("3.00")}, 1)
		c.Remove("12")
		if c.Len() != 0 {
			t.Fatalf("remove by %T id failed", id)
		}
	}
}

func TestRemoveFallbackScanAndIdempotence(t *testing.T) {
	c := New()
	// 直接从持久化数据恢复，字符串键保持原样未归一化
	if err := c.Hydrate([]byte(`[{"id":"12","name":"C","price":"3.00","qty":2,"cover":""}]`)); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	c.Remove(12)
	if c.Len() != 0 {
		t.Fatalf("remove should reach entry stored under string key")
	}

	// 不存在的 ID 删除为幂等空操作
	c.Remove(12)
	c.Remove("nonexistent")
}

func TestSerializeHydratePreservesOrderAndEntries(t *testing.T) {
	c := New()
	mustUpdate(t, c, ItemInput{ID: 3, Name: "甲", Price: price("1.00")}, 1)
	mustUpdate(t, c, ItemInput{ID: "b", Name: "乙", Price: price("2.50")}, 2)
	mustUpdate(t, c, ItemInput{ID: 1, Name: "丙", Price: price("0.30")}, 4)

	blob, err := c.Serialize()
	if err != nil {
		t.Fatalf("serialize failed: %v", err)
	}

	restored := New()
	if err := restored.Hydrate(blob); err != nil {
		t.Fatalf("hydrate failed: %v", err)
	}
	got := restored.Snapshot()
	want := c.Snapshot()
	if got.Count != want.Count || !got.Total.Equal(want.Total) {
		t.Fatalf("restored totals differ: got %+v want %+v", got, want)
	}
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(got.Items))
	}
	for i := range got.Items {
		if got.Items[i].ID.String() != want.Items[i].ID.String() ||
			got.Items[i].Name != want.Items[i].Name ||
			got.Items[i].Quantity != want.Items[i].Quantity ||
			!got.Items[i].Price.Equal(want.Items[i].Price) {
			t.Fatalf("entry %d differs: got %+v want %+v", i, got.Items[i], want.Items[i])
		}
	}
}

func TestHydrateMalformedBlobKeepsState(t *testing.T) {
	c := New()
	mustUpdate(t, c, ItemInput{ID: 1, Name: "A", Price: price("1.00")}, 1)

	if err := c.Hydrate([]byte("{not json")); err == nil {
		t.Fatalf("expected parse error")
	}
	if c.Len() != 1 {
		t.Fatalf("malformed blob must not wipe existing state")
	}
	if err := c.Hydrate(nil); err != nil {
		t.Fatalf("empty blob should be a no-op: %v", err)
	}
}

func TestClearEmptiesCartAndSnapshot(t *testing.T) {
	c := New()
	mustUpdate(t, c, ItemInput{ID: 1, Name: "A", Price: price("1.00")}, 2)
	c.Clear()

	if c.Len() != 0 {
		t.Fatalf("clear should empty the cart")
	}
	snap := c.Snapshot()
	if snap.Count != 0 || !snap.Total.IsZero() || snap.CheckoutEnabled {
		t.Fatalf("cleared cart snapshot should be empty with checkout disabled: %+v", snap)
	}
}

func TestCheckoutPayloadOrderAndTotal(t *testing.T) {
	c := New()
	mustUpdate(t, c, ItemInput{ID: 2, Name: "甲", Price: price("4.00")}, 2)
	mustUpdate(t, c, ItemInput{ID: 1, Name: "乙", Price: price("1.50")}, 1)

	items, total := c.CheckoutPayload()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != NumericKey(2) || items[1].ID != NumericKey(1) {
		t.Fatalf("checkout items must keep insertion order: %+v", items)
	}
	if !total.Equal(price("9.50")) {
		t.Fatalf("expected total 9.50, got %s", total)
	}
}
