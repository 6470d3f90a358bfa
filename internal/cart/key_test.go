package cart

import (
	"encoding/json"
	"testing"
)

func TestNormalizeKeyCollapsesDigitStrings(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want Key
	}{
		{"int", 7, NumericKey(7)},
		{"int64", int64(7), NumericKey(7)},
		{"digit string", "7", NumericKey(7)},
		{"float whole", float64(7), NumericKey(7)},
		{"json number", json.Number("7"), NumericKey(7)},
		{"name fallback", "特价礼盒", StringKey("特价礼盒")},
		{"mixed string", "7a", StringKey("7a")},
		{"decimal string", "7.5", StringKey("7.5")},
		{"empty", "", StringKey("")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeKey(tc.raw)
			if got != tc.want {
				t.Fatalf("NormalizeKey(%v) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestRawKeyPreservesStringForm(t *testing.T) {
	raw := RawKey("12")
	if raw.IsNumeric() {
		t.Fatalf("raw key should keep string form")
	}
	if raw == NormalizeKey("12") {
		t.Fatalf("raw digit string should differ from canonical numeric key")
	}
	if raw.String() != NormalizeKey("12").String() {
		t.Fatalf("string representations should match for fallback scan")
	}
}

func TestKeyJSONRoundTrip(t *testing.T) {
	type wrapper struct {
		ID Key `json:"id"`
	}

	numOut, err := json.Marshal(wrapper{ID: NumericKey(12)})
	if err != nil {
		t.Fatalf("marshal numeric key failed: %v", err)
	}
	if string(numOut) != `{"id":12}` {
		t.Fatalf("numeric key should marshal as number, got %s", numOut)
	}

	strOut, err := json.Marshal(wrapper{ID: StringKey("12")})
	if err != nil {
		t.Fatalf("marshal string key failed: %v", err)
	}
	if string(strOut) != `{"id":"12"}` {
		t.Fatalf("string key should marshal as string, got %s", strOut)
	}

	var w wrapper
	if err := json.Unmarshal(strOut, &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if w.ID != StringKey("12") {
		t.Fatalf("string key should round-trip in original form, got %v", w.ID)
	}
	if err := json.Unmarshal(numOut, &w); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if w.ID != NumericKey(12) {
		t.Fatalf("numeric key should round-trip as numeric, got %v", w.ID)
	}
}
