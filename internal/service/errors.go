package service

import "errors"

// 服务层哨兵错误，由各处理器映射为对外响应码
var (
	ErrNotFound            = errors.New("记录不存在")
	ErrInvalidCartItem     = errors.New("购物车商品信息不完整")
	ErrProductNotAvailable = errors.New("商品不存在或已下架")
	ErrStockNotEnough      = errors.New("商品库存不足")
	ErrCartEmpty           = errors.New("购物车为空")
	ErrOrderStatusInvalid  = errors.New("订单状态不允许该操作")
	ErrHotelNotFound       = errors.New("酒店不存在")
	ErrRoomNotAvailable    = errors.New("房型不存在或已满房")
	ErrInvalidDateRange    = errors.New("入住日期区间无效")
	ErrBillNotPayable      = errors.New("账单不可缴纳")
	ErrBillAmountMismatch  = errors.New("缴费金额与账单不符")
	ErrUsernameExists      = errors.New("用户名已存在")
	ErrInvalidCredentials  = errors.New("用户名或密码错误")
	ErrUserDisabled        = errors.New("用户已被禁用")
	ErrCaptchaInvalid      = errors.New("验证码错误")
	ErrCaptchaRequired     = errors.New("需要验证码")
	ErrCaptchaUnavailable  = errors.New("验证码服务未启用")
	ErrPermissionDenied    = errors.New("无权访问该资源")
)
