package service

import (
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"
)

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// ProductListResult 商品列表结果
type ProductListResult struct {
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
}

// List 上架商品列表
func (s *ProductService) List(filter repository.ProductListFilter) (*ProductListResult, error) {
	filter.OnlyActive = true
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	items, total, err := s.productRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return &ProductListResult{Items: items, Total: total, Page: filter.Page}, nil
}

// GetDetail 商品详情（仅上架商品）
func (s *ProductService) GetDetail(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}
	return product, nil
}
