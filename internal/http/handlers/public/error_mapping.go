package public

import (
	"errors"

	"github.com/xihu-next/internal/http/response"
	"github.com/xihu-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, msg: "商品信息不完整"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "商品不存在或已下架"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "购物车为空"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidCartItem, code: response.CodeBadRequest, msg: "商品信息不完整"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "商品不存在或已下架"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, msg: "购物车为空"},
	{target: service.ErrStockNotEnough, code: response.CodeBadRequest, msg: "商品库存不足"},
	{target: service.ErrPermissionDenied, code: response.CodeUnauthorized, msg: "请先登录"},
}

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "订单不存在"},
	{target: service.ErrPermissionDenied, code: response.CodeForbidden, msg: "无权访问该订单"},
	{target: service.ErrOrderStatusInvalid, code: response.CodeBadRequest, msg: "订单状态不允许该操作"},
}

var hotelBookErrorRules = []mappedHandlerError{
	{target: service.ErrHotelNotFound, code: response.CodeNotFound, msg: "酒店不存在"},
	{target: service.ErrRoomNotAvailable, code: response.CodeBadRequest, msg: "房型不存在或已满房"},
	{target: service.ErrInvalidDateRange, code: response.CodeBadRequest, msg: "入住日期区间无效"},
	{target: service.ErrPermissionDenied, code: response.CodeUnauthorized, msg: "请先登录"},
}

var billErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "账单不存在"},
	{target: service.ErrPermissionDenied, code: response.CodeForbidden, msg: "无权访问该账单"},
	{target: service.ErrBillNotPayable, code: response.CodeBadRequest, msg: "账单不可缴纳"},
	{target: service.ErrBillAmountMismatch, code: response.CodeBadRequest, msg: "缴费金额与账单不符"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "购物车操作失败")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "下单失败")
}

func respondOrderError(c *gin.Context, err error) {
	respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "订单操作失败")
}

func respondHotelBookError(c *gin.Context, err error) {
	respondWithMappedError(c, err, hotelBookErrorRules, response.CodeInternal, "预订失败")
}

func respondBillError(c *gin.Context, err error) {
	respondWithMappedError(c, err, billErrorRules, response.CodeInternal, "缴费操作失败")
}
