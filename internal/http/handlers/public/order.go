package public

import (
	"strconv"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/repository"
	"github.com/xihu-next/internal/service"

	"github.com/gin-gonic/gin"
)

// checkoutRequest 结算请求
type checkoutRequest struct {
	ShippingName    string `json:"shipping_name" binding:"required"`
	ShippingPhone   string `json:"shipping_phone" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// Checkout 购物车结算下单
func (h *Handler) Checkout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	owner, ok := cartOwner(c)
	if !ok {
		respondError(c, response.CodeBadRequest, "缺少购物车会话标识", nil)
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	order, err := h.ShopOrderService.Checkout(c.Request.Context(), service.CheckoutInput{
		UserID:          userID,
		CartOwner:       owner,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, order)
}

// ListShopOrders 当前用户订单列表
func (h *Handler) ListShopOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := h.ShopOrderService.ListByUser(userID, repository.ShopOrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "订单列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetShopOrder 订单详情
func (h *Handler) GetShopOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "订单 ID 无效", nil)
		return
	}
	order, err := h.ShopOrderService.GetByUser(userID, uint(orderID))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// PayShopOrder 订单支付（模拟支付完成回调）
func (h *Handler) PayShopOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "订单 ID 无效", nil)
		return
	}
	order, err := h.ShopOrderService.Pay(userID, uint(orderID))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelShopOrder 取消待支付订单
func (h *Handler) CancelShopOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "订单 ID 无效", nil)
		return
	}
	if err := h.ShopOrderService.Cancel(userID, uint(orderID)); err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithMsg(c, "订单已取消", nil)
}
