package cart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Key 购物车商品键
// 商品 ID 在各调用方之间类型不统一（数字或数字字符串），
// 入口处统一归一化为数字形式，避免同一商品出现多条条目。
// 非数字字符串（如以名称兜底作键）保持原样。
type Key struct {
	num   int64
	str   string
	isNum bool
}

// NumericKey 创建数字键
func NumericKey(n int64) Key {
	return Key{num: n, isNum: true}
}

// StringKey 创建字符串键（不做数字折叠）
func StringKey(s string) Key {
	return Key{str: s}
}

// NormalizeKey 将任意形式的商品 ID 归一化为规范键
// 纯数字字符串折叠为数字键，其余字符串原样保留
func NormalizeKey(raw interface{}) Key {
	k := RawKey(raw)
	if k.isNum {
		return k
	}
	if n, ok := parseDigits(k.str); ok {
		return NumericKey(n)
	}
	return k
}

// RawKey 保留调用方原始形式的键（字符串不折叠为数字）
// 用于迁移判断：规范键未命中而原始键命中时需要搬移条目
func RawKey(raw interface{}) Key {
	switch v := raw.(type) {
	case Key:
		return v
	case int:
		return NumericKey(int64(v))
	case int32:
		return NumericKey(int64(v))
	case int64:
		return NumericKey(v)
	case uint:
		return NumericKey(int64(v))
	case uint32:
		return NumericKey(int64(v))
	case uint64:
		return NumericKey(int64(v))
	case float64:
		if v == float64(int64(v)) {
			return NumericKey(int64(v))
		}
		return StringKey(strconv.FormatFloat(v, 'f', -1, 64))
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return NumericKey(n)
		}
		return StringKey(v.String())
	case string:
		return StringKey(v)
	case nil:
		return StringKey("")
	default:
		return StringKey(fmt.Sprintf("%v", v))
	}
}

// parseDigits 解析仅含数字的字符串（不接受小数点与符号）
func parseDigits(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsNumeric 是否为数字键
func (k Key) IsNumeric() bool {
	return k.isNum
}

// Uint 数字键转为无符号主键，非数字或负数键返回错误
func (k Key) Uint() (uint, error) {
	if !k.isNum || k.num < 0 {
		return 0, fmt.Errorf("非数字商品键: %s", k.String())
	}
	return uint(k.num), nil
}

// String 返回键的字符串表示
// 数字键与等值数字字符串键返回相同文本，供兜底线性扫描比较
func (k Key) String() string {
	if k.isNum {
		return strconv.FormatInt(k.num, 10)
	}
	return k.str
}

// MarshalJSON 数字键输出 JSON 数字，字符串键输出 JSON 字符串
func (k Key) MarshalJSON() ([]byte, error) {
	if k.isNum {
		return json.Marshal(k.num)
	}
	return json.Marshal(k.str)
}

// UnmarshalJSON 按持久化时的原始形式还原键
func (k *Key) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return err
	}
	*k = RawKey(v)
	return nil
}
