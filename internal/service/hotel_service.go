package service

import (
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/repository"
)

// HotelService 酒店查询服务
type HotelService struct {
	hotelRepo repository.HotelRepository
}

// NewHotelService 创建酒店服务
func NewHotelService(hotelRepo repository.HotelRepository) *HotelService {
	return &HotelService{hotelRepo: hotelRepo}
}

// HotelListResult 酒店列表结果
type HotelListResult struct {
	Items []models.Hotel `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
}

// HotelDetail 酒店详情（含房型）
type HotelDetail struct {
	Hotel models.Hotel       `json:"hotel"`
	Rooms []models.HotelRoom `json:"rooms"`
}

// List 酒店列表（按省市、星级、关键词、价格过滤）
func (s *HotelService) List(filter repository.HotelListFilter) (*HotelListResult, error) {
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	items, total, err := s.hotelRepo.List(filter)
	if err != nil {
		return nil, err
	}
	return &HotelListResult{Items: items, Total: total, Page: filter.Page}, nil
}

// ListHot 评分最高的酒店
func (s *HotelService) ListHot(limit int) ([]models.Hotel, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.hotelRepo.ListHot(limit)
}

// Provinces 省份筛选维度
func (s *HotelService) Provinces() ([]string, error) {
	return s.hotelRepo.ListProvinces()
}

// Cities 城市筛选维度（可按省份过滤）
func (s *HotelService) Cities(province string) ([]string, error) {
	return s.hotelRepo.ListCities(province)
}

// GetDetail 酒店详情与房型
func (s *HotelService) GetDetail(id uint) (*HotelDetail, error) {
	hotel, err := s.hotelRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	rooms, err := s.hotelRepo.ListRooms(hotel.ID)
	if err != nil {
		return nil, err
	}
	return &HotelDetail{Hotel: *hotel, Rooms: rooms}, nil
}
