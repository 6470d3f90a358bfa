package repository

import "time"

// ProductListFilter 查询商品列表的过滤条件
type ProductListFilter struct {
	Page       int
	PageSize   int
	Category   string
	Search     string
	OnlyActive bool
}

// HotelListFilter 查询酒店列表的过滤条件
type HotelListFilter struct {
	Page     int
	PageSize int
	Province string
	City     string
	Level    int
	Search   string
	MaxPrice *float64
	OrderBy  string
}

// HotelOrderListFilter 查询酒店订单列表的过滤条件
type HotelOrderListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	Status   string
}

// ShopOrderListFilter 查询商城订单列表的过滤条件
type ShopOrderListFilter struct {
	Page        int
	PageSize    int
	UserID      uint
	Status      string
	OrderNo     string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// BillListFilter 查询缴费账单列表的过滤条件
type BillListFilter struct {
	Page     int
	PageSize int
	UserID   uint
	BillType string
	Status   string
	Period   string
}
