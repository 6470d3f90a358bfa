package public

import (
	"strconv"
	"time"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/repository"
	"github.com/xihu-next/internal/service"

	"github.com/gin-gonic/gin"
)

const hotelDateLayout = "2006-01-02"

// ListHotels 酒店列表（支持省市、星级、关键词、价格上限过滤）
func (h *Handler) ListHotels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	level, _ := strconv.Atoi(c.DefaultQuery("level", "0"))

	filter := repository.HotelListFilter{
		Page:     page,
		PageSize: pageSize,
		Province: c.Query("province"),
		City:     c.Query("city"),
		Level:    level,
		Search:   c.Query("search"),
		OrderBy:  c.Query("order_by"),
	}
	if raw := c.Query("max_price"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil && maxPrice > 0 {
			filter.MaxPrice = &maxPrice
		}
	}

	result, err := h.HotelService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "酒店列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, result.Items, response.NewPagination(result.Page, pageSize, result.Total))
}

// ListHotHotels 热门酒店（按评分取前 N 家）
func (h *Handler) ListHotHotels(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	hotels, err := h.HotelService.ListHot(limit)
	if err != nil {
		respondError(c, response.CodeInternal, "热门酒店获取失败", err)
		return
	}
	response.Success(c, hotels)
}

// ListProvinces 酒店覆盖的省份
func (h *Handler) ListProvinces(c *gin.Context) {
	provinces, err := h.HotelService.Provinces()
	if err != nil {
		respondError(c, response.CodeInternal, "省份列表获取失败", err)
		return
	}
	response.Success(c, provinces)
}

// ListCities 酒店覆盖的城市，可按省份过滤
func (h *Handler) ListCities(c *gin.Context) {
	cities, err := h.HotelService.Cities(c.Query("province"))
	if err != nil {
		respondError(c, response.CodeInternal, "城市列表获取失败", err)
		return
	}
	response.Success(c, cities)
}

// GetHotel 酒店详情（含房型）
func (h *Handler) GetHotel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "酒店 ID 无效", nil)
		return
	}
	detail, err := h.HotelService.GetDetail(uint(id))
	if err != nil {
		respondHotelBookError(c, err)
		return
	}
	response.Success(c, detail)
}

// bookRequest 预订请求
type bookRequest struct {
	HotelID uint   `json:"hotel_id" binding:"required"`
	RoomID  uint   `json:"room_id" binding:"required"`
	InDate  string `json:"in_date" binding:"required"`
	OutDate string `json:"out_date" binding:"required"`
	Guests  int    `json:"guests"`
	Name    string `json:"name" binding:"required"`
	Tel     string `json:"tel" binding:"required"`
	Notes   string `json:"notes"`
}

// BookHotel 创建酒店预订
func (h *Handler) BookHotel(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求参数错误", err)
		return
	}
	inDate, err := time.ParseInLocation(hotelDateLayout, req.InDate, time.Local)
	if err != nil {
		respondError(c, response.CodeBadRequest, "入住日期格式错误", nil)
		return
	}
	outDate, err := time.ParseInLocation(hotelDateLayout, req.OutDate, time.Local)
	if err != nil {
		respondError(c, response.CodeBadRequest, "离店日期格式错误", nil)
		return
	}

	order, err := h.HotelOrderService.Book(service.BookInput{
		UserID:  userID,
		HotelID: req.HotelID,
		RoomID:  req.RoomID,
		InDate:  inDate,
		OutDate: outDate,
		Guests:  req.Guests,
		Name:    req.Name,
		Tel:     req.Tel,
		Notes:   req.Notes,
	})
	if err != nil {
		respondHotelBookError(c, err)
		return
	}
	response.Success(c, order)
}

// ListHotelOrders 当前用户预订列表
func (h *Handler) ListHotelOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := h.HotelOrderService.ListByUser(userID, repository.HotelOrderListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   c.Query("status"),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "预订列表获取失败", err)
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetHotelOrder 预订详情
func (h *Handler) GetHotelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "订单 ID 无效", nil)
		return
	}
	order, err := h.HotelOrderService.GetByUser(userID, uint(orderID))
	if err != nil {
		respondOrderError(c, err)
		return
	}
	response.Success(c, order)
}

// CancelHotelOrder 取消预订
func (h *Handler) CancelHotelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "订单 ID 无效", nil)
		return
	}
	if err := h.HotelOrderService.Cancel(userID, uint(orderID)); err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithMsg(c, "预订已取消", nil)
}

// ConfirmHotelOrder 确认入住
func (h *Handler) ConfirmHotelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, response.CodeBadRequest, "订单 ID 无效", nil)
		return
	}
	if err := h.HotelOrderService.Confirm(userID, uint(orderID)); err != nil {
		respondOrderError(c, err)
		return
	}
	response.SuccessWithMsg(c, "预订已确认", nil)
}
