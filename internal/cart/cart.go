package cart

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/xihu-next/internal/constants"
)

var (
	// ErrInvalidItem 商品信息不完整（缺少 ID 等），本次操作中止
	ErrInvalidItem = errors.New("商品信息不完整")
)

// LineItem 购物车行项目
type LineItem struct {
	Key       Key
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Cover     string
}

// ItemInput 更新数量时随调用提供的商品信息（后写覆盖）
type ItemInput struct {
	ID    interface{}
	Name  string
	Price decimal.Decimal
	Cover string
}

// Cart 有序购物车：规范键 -> 行项目，保留插入顺序用于展示
// 单写者模型，自身不加锁，由上层按会话串行调用
type Cart struct {
	items map[Key]*LineItem
	order []Key
}

// New 创建空购物车
func New() *Cart {
	return &Cart{items: make(map[Key]*LineItem)}
}

// Len 条目数（不同商品数，非数量合计）
func (c *Cart) Len() int {
	return len(c.items)
}

// Get 按任意形式的 ID 查找行项目，必要时将旧键条目迁移到规范键
func (c *Cart) Get(raw interface{}) (*LineItem, bool) {
	_, item := c.locate(raw)
	if item == nil {
		return nil, false
	}
	return item, true
}

// locate 归一化查找：规范键未命中而原始键命中时，把条目搬到规范键下
// 保证后续无论用哪种形式引用都收敛到同一条目
func (c *Cart) locate(raw interface{}) (Key, *LineItem) {
	canonical := NormalizeKey(raw)
	if item, ok := c.items[canonical]; ok {
		return canonical, item
	}
	rawKey := RawKey(raw)
	if rawKey == canonical {
		return canonical, nil
	}
	item, ok := c.items[rawKey]
	if !ok {
		return canonical, nil
	}
	// 旧会话遗留的字符串键条目，迁移到规范键
	delete(c.items, rawKey)
	item.Key = canonical
	c.items[canonical] = item
	c.replaceOrderKey(rawKey, canonical)
	return canonical, item
}

// UpdateQuantity 更新行项目数量
// delta 小于阈值按增量处理；大于等于阈值按「阈值+目标数量」解码为目标模式，
// 由当前数量推算出等效增量再套用增量逻辑。结果下限为 0，为 0 时删除条目。
func (c *Cart) UpdateQuantity(input ItemInput, delta int) error {
	if input.ID == nil {
		return ErrInvalidItem
	}
	key, item := c.locate(input.ID)
	if key.String() == "" {
		return ErrInvalidItem
	}

	current := 0
	if item != nil {
		current = item.Quantity
	}
	if delta >= constants.CartTargetQuantityBase {
		desired := delta - constants.CartTargetQuantityBase
		delta = desired - current
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next == 0 {
		c.deleteKey(key)
		return nil
	}

	cover := input.Cover
	if cover == "" && item != nil {
		cover = item.Cover
	}
	if cover == "" {
		cover = constants.DefaultProductCover
	}
	if item == nil {
		item = &LineItem{Key: key}
		c.items[key] = item
		c.order = append(c.order, key)
	}
	item.Name = input.Name
	item.UnitPrice = input.Price
	item.Quantity = next
	item.Cover = cover
	return nil
}

// Remove 按任意形式的 ID 删除行项目，不存在视为成功（幂等）
// 规范键、原始键均未命中时退化为线性扫描，按字符串表示逐一比对
func (c *Cart) Remove(raw interface{}) {
	canonical := NormalizeKey(raw)
	if _, ok := c.items[canonical]; ok {
		c.deleteKey(canonical)
		return
	}
	rawKey := RawKey(raw)
	if _, ok := c.items[rawKey]; ok {
		c.deleteKey(rawKey)
		return
	}
	want := rawKey.String()
	for _, k := range c.order {
		if k.String() == want {
			c.deleteKey(k)
			return
		}
	}
}

// deleteKey 从映射与顺序表中移除条目
func (c *Cart) deleteKey(key Key) {
	if _, ok := c.items[key]; !ok {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// replaceOrderKey 键迁移时保持原有展示位置
func (c *Cart) replaceOrderKey(from, to Key) {
	for i, k := range c.order {
		if k == from {
			c.order[i] = to
			return
		}
	}
}

// Clear 清空购物车
func (c *Cart) Clear() {
	c.items = make(map[Key]*LineItem)
	c.order = nil
}

// storedRecord 持久化记录，与存储槽中的 JSON 数组一一对应
type storedRecord struct {
	ID    Key             `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
	Qty   int             `json:"qty"`
	Cover string          `json:"cover"`
}

// Serialize 按插入顺序序列化为 JSON 数组
func (c *Cart) Serialize() ([]byte, error) {
	records := make([]storedRecord, 0, len(c.order))
	for _, k := range c.order {
		item, ok := c.items[k]
		if !ok {
			continue
		}
		records = append(records, storedRecord{
			ID:    item.Key,
			Name:  item.Name,
			Price: item.UnitPrice,
			Qty:   item.Quantity,
			Cover: item.Cover,
		})
	}
	return json.Marshal(records)
}

// Subtotal 行小计
func (it *LineItem) Subtotal() decimal.Decimal {
	return it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

// Hydrate 从持久化数据恢复购物车
// 解析失败返回错误由调用方记录日志并按「无购物车」处理，已有内存状态不变；
// 解析成功则清空后按记录原始 id 形式逐条重建
func (c *Cart) Hydrate(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	var records []storedRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	c.Clear()
	for _, r := range records {
		if r.Qty <= 0 {
			continue
		}
		key := r.ID
		if _, ok := c.items[key]; ok {
			continue
		}
		c.items[key] = &LineItem{
			Key:       key,
			Name:      r.Name,
			UnitPrice: r.Price,
			Quantity:  r.Qty,
			Cover:     r.Cover,
		}
		c.order = append(c.order, key)
	}
	return nil
}

// SnapshotItem 渲染快照中的单行
type SnapshotItem struct {
	ID       Key             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"qty"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Cover    string          `json:"cover"`
}

// Snapshot 渲染快照：数量合计、总价、逐行小计与可结算标记
type Snapshot struct {
	Count           int             `json:"count"`
	Total           decimal.Decimal `json:"total"`
	Items           []SnapshotItem  `json:"items"`
	CheckoutEnabled bool            `json:"checkout_enabled"`
}

// Snapshot 由当前状态派生渲染所需数据，纯函数无副作用
func (c *Cart) Snapshot() Snapshot {
	snap := Snapshot{
		Total: decimal.Zero,
		Items: make([]SnapshotItem, 0, len(c.order)),
	}
	for _, k := range c.order {
		item, ok := c.items[k]
		if !ok {
			continue
		}
		sub := item.Subtotal()
		snap.Count += item.Quantity
		snap.Total = snap.Total.Add(sub)
		snap.Items = append(snap.Items, SnapshotItem{
			ID:       item.Key,
			Name:     item.Name,
			Price:    item.UnitPrice,
			Quantity: item.Quantity,
			Subtotal: sub,
			Cover:    item.Cover,
		})
	}
	snap.CheckoutEnabled = snap.Count > 0
	return snap
}

// CheckoutItem 结算边界输出的单行
type CheckoutItem struct {
	ID    Key             `json:"id"`
	Qty   int             `json:"qty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CheckoutPayload 按插入顺序导出当前内容与合计，供下单服务使用
func (c *Cart) CheckoutPayload() ([]CheckoutItem, decimal.Decimal) {
	items := make([]CheckoutItem, 0, len(c.order))
	total := decimal.Zero
	for _, k := range c.order {
		item, ok := c.items[k]
		if !ok {
			continue
		}
		items = append(items, CheckoutItem{
			ID:    item.Key,
			Qty:   item.Quantity,
			Name:  item.Name,
			Price: item.UnitPrice,
		})
		total = total.Add(item.Subtotal())
	}
	return items, total
}
