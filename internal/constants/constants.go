package constants

// 购物车常量
const (
	// CartStorageKey 持久化存储槽位名称
	CartStorageKey = "shopping_cart"
	// CartTargetQuantityBase 目标数量模式编码基数：delta >= 该值时按 delta-基数 解释为目标数量
	CartTargetQuantityBase = 1000
	// DefaultProductCover 商品默认封面
	DefaultProductCover = "/img/default-product.jpg"
)

// 购物订单状态常量
const (
	ShopOrderStatusPending  = "pending_payment"
	ShopOrderStatusPaid     = "paid"
	ShopOrderStatusShipped  = "shipped"
	ShopOrderStatusCanceled = "canceled"
)

// 酒店订单状态常量
const (
	HotelOrderStatusBooked    = "booked"
	HotelOrderStatusConfirmed = "confirmed"
	HotelOrderStatusCanceled  = "canceled"
)

// 账单状态常量
const (
	BillStatusPending = "pending"
	BillStatusPaid    = "paid"
	BillStatusOverdue = "overdue"
)

// 缴费类型代码常量
const (
	BillTypeWater    = "WATER"
	BillTypeElectric = "ELECTRIC"
	BillTypeGas      = "GAS"
	BillTypeProperty = "PROPERTY"
	BillTypeInternet = "INTERNET"
	BillTypeMobile   = "MOBILE"
	BillTypeTV       = "TV"
	BillTypeParking  = "PARKING"
)

// 异步任务类型常量
const (
	TaskShopOrderTimeoutCancel = "shop:order:timeout_cancel"
	TaskPaymentBillGenerate    = "payment:bill:generate"
)

// 队列名称常量
const (
	QueueDefault  = "default"
	QueueCritical = "critical"
)

// 验证码场景常量
const (
	CaptchaSceneLogin    = "login"
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"
)

// 用户状态常量
const (
	UserStatusActive   = 1
	UserStatusDisabled = 0
)
