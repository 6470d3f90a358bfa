package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/queue"
	"github.com/xihu-next/internal/repository"
)

// ShopOrderService 商城订单服务
type ShopOrderService struct {
	orderRepo     repository.ShopOrderRepository
	productRepo   repository.ProductRepository
	cartService   *CartService
	queueClient   *queue.Client
	expireMinutes int
}

// NewShopOrderService 创建商城订单服务
func NewShopOrderService(
	orderRepo repository.ShopOrderRepository,
	productRepo repository.ProductRepository,
	cartService *CartService,
	queueClient *queue.Client,
	expireMinutes int,
) *ShopOrderService {
	if expireMinutes <= 0 {
		expireMinutes = 15
	}
	return &ShopOrderService{
		orderRepo:     orderRepo,
		productRepo:   productRepo,
		cartService:   cartService,
		queueClient:   queueClient,
		expireMinutes: expireMinutes,
	}
}

// CheckoutInput 结算输入
type CheckoutInput struct {
	UserID          uint
	CartOwner       string
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
}

// Checkout 购物车结算下单
// 金额以商品表当前价格在服务端重算，不信任客户端快照；
// 库存条件扣减与订单写入在同一事务内，成功后清空购物车并挂超时取消任务
func (s *ShopOrderService) Checkout(ctx context.Context, input CheckoutInput) (*models.ShopOrder, error) {
	if input.UserID == 0 {
		return nil, ErrPermissionDenied
	}
	cartItems, _, err := s.cartService.CheckoutPayload(ctx, input.CartOwner)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(cartItems))
	quantities := make(map[uint]int, len(cartItems))
	for _, item := range cartItems {
		id, err := item.ID.Uint()
		if err != nil || item.Qty <= 0 {
			return nil, ErrInvalidCartItem
		}
		ids = append(ids, id)
		quantities[id] = item.Qty
	}

	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	now := time.Now()
	expiresAt := now.Add(time.Duration(s.expireMinutes) * time.Minute)
	total := decimal.Zero
	orderItems := make([]models.ShopOrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		id, _ := item.ID.Uint()
		product, ok := byID[id]
		if !ok || !product.IsActive {
			return nil, ErrProductNotAvailable
		}
		qty := quantities[id]
		subtotal := product.PriceAmount.Decimal.Mul(decimal.NewFromInt(int64(qty)))
		total = total.Add(subtotal)
		orderItems = append(orderItems, models.ShopOrderItem{
			ProductID:    id,
			ProductName:  product.Name,
			ProductPrice: product.PriceAmount,
			Quantity:     qty,
			Subtotal:     models.NewMoneyFromDecimal(subtotal),
		})
	}

	order := &models.ShopOrder{
		OrderNo:         generateOrderNo(),
		UserID:          input.UserID,
		TotalAmount:     models.NewMoneyFromDecimal(total),
		ShippingName:    strings.TrimSpace(input.ShippingName),
		ShippingPhone:   strings.TrimSpace(input.ShippingPhone),
		ShippingAddress: strings.TrimSpace(input.ShippingAddress),
		Status:          constants.ShopOrderStatusPending,
		ExpiredAt:       &expiresAt,
		Items:           orderItems,
	}

	err = s.orderRepo.Transaction(func(tx *gorm.DB) error {
		for id, qty := range quantities {
			affected, err := s.productRepo.DecrementStock(tx, id, qty)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrStockNotEnough
			}
		}
		return s.orderRepo.WithTx(tx).Create(order)
	})
	if err != nil {
		return nil, err
	}

	// 下单成功后清空购物车
	if _, err := s.cartService.Clear(ctx, input.CartOwner); err != nil {
		logger.Warnw("cart_clear_after_checkout_failed", "owner", input.CartOwner, "error", err)
	}

	if err := s.queueClient.EnqueueShopOrderTimeoutCancel(
		queue.ShopOrderTimeoutCancelPayload{OrderID: order.ID},
		time.Until(expiresAt),
	); err != nil {
		logger.Warnw("enqueue_timeout_cancel_failed", "order_id", order.ID, "error", err)
	}

	// 下单成功后异步补齐当期周期账单
	if s.queueClient.Enabled() {
		payload := queue.BillGeneratePayload{UserID: input.UserID, Period: now.Format("2006-01")}
		if err := s.queueClient.EnqueueBillGenerate(payload); err != nil {
			logger.Warnw("enqueue_bill_generate_failed", "order_id", order.ID, "error", err)
		}
	}

	return order, nil
}

// ListByUser 当前用户订单列表
func (s *ShopOrderService) ListByUser(userID uint, filter repository.ShopOrderListFilter) ([]models.ShopOrder, int64, error) {
	filter.UserID = userID
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return s.orderRepo.List(filter)
}

// GetByUser 获取当前用户的订单详情
func (s *ShopOrderService) GetByUser(userID, orderID uint) (*models.ShopOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return order, nil
}

// Pay 标记订单支付完成（模拟支付回调）
func (s *ShopOrderService) Pay(userID, orderID uint) (*models.ShopOrder, error) {
	order, err := s.GetByUser(userID, orderID)
	if err != nil {
		return nil, err
	}
	affected, err := s.orderRepo.MarkPaid(order.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrOrderStatusInvalid
	}
	return s.orderRepo.GetByID(order.ID)
}

// Cancel 用户主动取消待支付订单并回补库存
func (s *ShopOrderService) Cancel(userID, orderID uint) error {
	order, err := s.GetByUser(userID, orderID)
	if err != nil {
		return err
	}
	return s.cancelPending(order)
}

// TimeoutCancel 超时取消（队列任务调用），订单已离开待支付状态时为空操作
func (s *ShopOrderService) TimeoutCancel(orderID uint) error {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return err
	}
	if order == nil || order.Status != constants.ShopOrderStatusPending {
		return nil
	}
	return s.cancelPending(order)
}

func (s *ShopOrderService) cancelPending(order *models.ShopOrder) error {
	return s.orderRepo.Transaction(func(tx *gorm.DB) error {
		affected, err := s.orderRepo.UpdateStatus(tx, order.ID, constants.ShopOrderStatusPending, constants.ShopOrderStatusCanceled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderStatusInvalid
		}
		for _, item := range order.Items {
			if err := s.productRepo.IncrementStock(tx, item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		return nil
	})
}

func generateOrderNo() string {
	now := time.Now().Format("20060102150405")
	return fmt.Sprintf("XH%s%s", now, randNumeric(6))
}

func randNumeric(length int) string {
	var b strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			b.WriteString("0")
			continue
		}
		b.WriteString(fmt.Sprintf("%d", n.Int64()))
	}
	return b.String()
}
