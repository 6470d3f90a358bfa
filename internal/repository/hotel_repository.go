package repository

import (
	"errors"
	"strings"

	"github.com/xihu-next/internal/models"

	"gorm.io/gorm"
)

// HotelRepository 酒店数据访问接口
type HotelRepository interface {
	List(filter HotelListFilter) ([]models.Hotel, int64, error)
	ListHot(limit int) ([]models.Hotel, error)
	ListProvinces() ([]string, error)
	ListCities(province string) ([]string, error)
	GetByID(id uint) (*models.Hotel, error)
	ListRooms(hotelID uint) ([]models.HotelRoom, error)
	GetRoomByID(id uint) (*models.HotelRoom, error)
	Create(hotel *models.Hotel) error
	CreateRoom(room *models.HotelRoom) error
	SetRoomFull(tx *gorm.DB, roomID uint, full bool) error
	WithTx(tx *gorm.DB) HotelRepository
}

// GormHotelRepository GORM 实现
type GormHotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository 创建酒店仓库
func NewHotelRepository(db *gorm.DB) *GormHotelRepository {
	return &GormHotelRepository{db: db}
}

// WithTx 绑定事务
func (r *GormHotelRepository) WithTx(tx *gorm.DB) HotelRepository {
	if tx == nil {
		return r
	}
	return &GormHotelRepository{db: tx}
}

// List 酒店列表（按省市、星级、关键词、价格上限过滤）
func (r *GormHotelRepository) List(filter HotelListFilter) ([]models.Hotel, int64, error) {
	var hotels []models.Hotel

	query := r.db.Model(&models.Hotel{})
	if province := strings.TrimSpace(filter.Province); province != "" {
		query = query.Where("province = ?", province)
	}
	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("city = ?", city)
	}
	if filter.Level > 0 {
		query = query.Where("level = ?", filter.Level)
	}
	if filter.MaxPrice != nil {
		query = query.Where("min_price <= ?", *filter.MaxPrice)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR address LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	order := "score DESC, id ASC"
	switch filter.OrderBy {
	case "price_asc":
		order = "min_price ASC, id ASC"
	case "price_desc":
		order = "min_price DESC, id ASC"
	}
	if err := query.Order(order).Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, total, nil
}

// ListHot 按评分取前 N 家酒店
func (r *GormHotelRepository) ListHot(limit int) ([]models.Hotel, error) {
	if limit <= 0 {
		limit = 10
	}
	var hotels []models.Hotel
	if err := r.db.Order("score DESC, id ASC").Limit(limit).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

// ListProvinces 去重后的省份列表
func (r *GormHotelRepository) ListProvinces() ([]string, error) {
	var provinces []string
	err := r.db.Model(&models.Hotel{}).
		Distinct("province").
		Where("province <> ''").
		Order("province ASC").
		Pluck("province", &provinces).Error
	if err != nil {
		return nil, err
	}
	return provinces, nil
}

// ListCities 指定省份下去重后的城市列表
func (r *GormHotelRepository) ListCities(province string) ([]string, error) {
	query := r.db.Model(&models.Hotel{}).Distinct("city").Where("city <> ''")
	if province = strings.TrimSpace(province); province != "" {
		query = query.Where("province = ?", province)
	}
	var cities []string
	if err := query.Order("city ASC").Pluck("city", &cities).Error; err != nil {
		return nil, err
	}
	return cities, nil
}

// GetByID 根据 ID 获取酒店，未找到返回 nil
func (r *GormHotelRepository) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := r.db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

// ListRooms 酒店房型列表
func (r *GormHotelRepository) ListRooms(hotelID uint) ([]models.HotelRoom, error) {
	var rooms []models.HotelRoom
	if err := r.db.Where("hotel_id = ?", hotelID).Order("price ASC, id ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomByID 根据 ID 获取房型，未找到返回 nil
func (r *GormHotelRepository) GetRoomByID(id uint) (*models.HotelRoom, error) {
	var room models.HotelRoom
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &room, nil
}

// Create 创建酒店
func (r *GormHotelRepository) Create(hotel *models.Hotel) error {
	return r.db.Create(hotel).Error
}

// CreateRoom 创建房型
func (r *GormHotelRepository) CreateRoom(room *models.HotelRoom) error {
	return r.db.Create(room).Error
}

// SetRoomFull 更新房型满房标记
func (r *GormHotelRepository) SetRoomFull(tx *gorm.DB, roomID uint, full bool) error {
	db := r.db
	if tx != nil {
		db = tx
	}
	return db.Model(&models.HotelRoom{}).Where("id = ?", roomID).Update("full", full).Error
}
