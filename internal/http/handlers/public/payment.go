package public

import (
	"strconv"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListBills 当前用户缴费账单列表
func (h *Handler) ListBills(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	bills, total, err := h.PaymentService.ListByUser(userID, repository.BillListFilter{
		Page:     page,
		PageSize: pageSize,
		BillType: c.Query("type"),
		Status:   c.Query("status"),
		Period:   c.Query("period"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "账单列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, bills, response.NewPagination(page, pageSize, total))
}

// GetBillStats 当前用户缴费概览（待缴、逾期、本月已缴）
func (h *Handler) GetBillStats(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	stats, err := h.PaymentService.Stats(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "缴费概览获取失败", err)
		return
	}
	response.Success(c, stats)
}

// GetBill 账单详情
func (h *Handler) GetBill(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	billID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "账单 ID 无效", nil)
		return
	}
	bill, err := h.PaymentService.GetByUser(userID, uint(billID))
	if err != nil {
		respondBillError(c, err)
		return
	}
	response.Success(c, bill)
}

// payBillRequest 缴费请求
type payBillRequest struct {
	Amount models.Money `json:"amount" binding:"required"`
}

// PayBill 缴纳账单
func (h *Handler) PayBill(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	billID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "账单 ID 无效", nil)
		return
	}
	var req payBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	bill, err := h.PaymentService.Pay(userID, uint(billID), req.Amount)
	if err != nil {
		respondBillError(c, err)
		return
	}
	response.Success(c, bill)
}
