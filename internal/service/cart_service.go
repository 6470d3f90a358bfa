package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xihu-next/internal/cart"
	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/repository"
)

// CartService 购物车服务
// 每个归属者（登录用户或匿名会话）对应一个存储槽位，
// 读取-变更-写回在一次请求内完成，持久化失败只记日志不阻断操作
type CartService struct {
	storage     cart.Storage
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(storage cart.Storage, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		storage:     storage,
		productRepo: productRepo,
	}
}

// load 加载归属者购物车，持久化数据缺失或损坏时按空购物车处理
func (s *CartService) load(ctx context.Context, owner string) *cart.Cart {
	c := cart.New()
	blob, hit, err := s.storage.Load(ctx, owner)
	if err != nil {
		logger.Warnw("cart_load_failed", "owner", owner, "error", err)
		return c
	}
	if !hit {
		return c
	}
	if err := c.Hydrate(blob); err != nil {
		logger.Warnw("cart_blob_malformed", "owner", owner, "error", err)
		return cart.New()
	}
	return c
}

// persist 写回购物车，失败记录日志
func (s *CartService) persist(ctx context.Context, owner string, c *cart.Cart) {
	blob, err := c.Serialize()
	if err != nil {
		logger.Errorw("cart_serialize_failed", "owner", owner, "error", err)
		return
	}
	if err := s.storage.Save(ctx, owner, blob); err != nil {
		logger.Warnw("cart_save_failed", "owner", owner, "error", err)
	}
}

// Get 获取购物车渲染快照
func (s *CartService) Get(ctx context.Context, owner string) (cart.Snapshot, error) {
	return s.load(ctx, owner).Snapshot(), nil
}

// UpdateItem 更新购物车商品数量
// delta 为增量，或以目标模式编码的绝对数量；商品信息从商品表查询，
// 查询失败或商品不可用时本次操作中止，不影响已有条目
func (s *CartService) UpdateItem(ctx context.Context, owner string, rawID interface{}, delta int) (cart.Snapshot, error) {
	key := cart.NormalizeKey(rawID)
	if !key.IsNumeric() {
		return cart.Snapshot{}, ErrInvalidCartItem
	}
	productID, err := key.Uint()
	if err != nil {
		return cart.Snapshot{}, ErrInvalidCartItem
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return cart.Snapshot{}, err
	}
	if product == nil || !product.IsActive {
		return cart.Snapshot{}, ErrProductNotAvailable
	}

	c := s.load(ctx, owner)
	input := cart.ItemInput{
		ID:    rawID,
		Name:  product.Name,
		Price: product.PriceAmount.Decimal,
		Cover: product.Cover,
	}
	if err := c.UpdateQuantity(input, delta); err != nil {
		return cart.Snapshot{}, ErrInvalidCartItem
	}
	s.persist(ctx, owner, c)
	return c.Snapshot(), nil
}

// RemoveItem 删除购物车商品，幂等
func (s *CartService) RemoveItem(ctx context.Context, owner string, rawID interface{}) (cart.Snapshot, error) {
	c := s.load(ctx, owner)
	c.Remove(rawID)
	s.persist(ctx, owner, c)
	return c.Snapshot(), nil
}

// Clear 清空购物车并移除存储槽位（登出或下单成功后调用）
func (s *CartService) Clear(ctx context.Context, owner string) (cart.Snapshot, error) {
	if err := s.storage.Delete(ctx, owner); err != nil {
		logger.Warnw("cart_clear_failed", "owner", owner, "error", err)
	}
	return cart.New().Snapshot(), nil
}

// CheckoutPayload 导出结算内容与合计
func (s *CartService) CheckoutPayload(ctx context.Context, owner string) ([]cart.CheckoutItem, decimal.Decimal, error) {
	c := s.load(ctx, owner)
	items, total := c.CheckoutPayload()
	if len(items) == 0 {
		return nil, decimal.Zero, ErrCartEmpty
	}
	return items, total, nil
}
