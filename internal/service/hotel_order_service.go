package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/queue"
	"github.com/xihu-next/internal/repository"
)

// HotelOrderService 酒店预订服务
type HotelOrderService struct {
	hotelRepo   repository.HotelRepository
	orderRepo   repository.HotelOrderRepository
	queueClient *queue.Client
}

// NewHotelOrderService 创建酒店预订服务
func NewHotelOrderService(hotelRepo repository.HotelRepository, orderRepo repository.HotelOrderRepository, queueClient *queue.Client) *HotelOrderService {
	return &HotelOrderService{hotelRepo: hotelRepo, orderRepo: orderRepo, queueClient: queueClient}
}

// BookInput 预订输入
type BookInput struct {
	UserID  uint
	HotelID uint
	RoomID  uint
	InDate  time.Time
	OutDate time.Time
	Guests  int
	Name    string
	Tel     string
	Notes   string
}

// Book 创建酒店预订订单
// 总价 = 每晚价格 × 间夜数，入住快照（酒店名、房型名、图片）随单落库
func (s *HotelOrderService) Book(input BookInput) (*models.HotelOrder, error) {
	if input.UserID == 0 {
		return nil, ErrPermissionDenied
	}
	nights := nightsBetween(input.InDate, input.OutDate)
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}
	hotel, err := s.hotelRepo.GetByID(input.HotelID)
	if err != nil {
		return nil, err
	}
	if hotel == nil {
		return nil, ErrHotelNotFound
	}
	room, err := s.hotelRepo.GetRoomByID(input.RoomID)
	if err != nil {
		return nil, err
	}
	if room == nil || room.HotelID != hotel.ID || room.Full {
		return nil, ErrRoomNotAvailable
	}

	guests := input.Guests
	if guests < 1 {
		guests = 1
	}
	total := room.Price.Decimal.Mul(decimal.NewFromInt(int64(nights)))
	order := &models.HotelOrder{
		OrderNo:   generateOrderNo(),
		UserID:    input.UserID,
		HotelID:   hotel.ID,
		RoomID:    room.ID,
		RoomName:  room.Name,
		HotelName: hotel.Name,
		HotelImg:  hotel.Img,
		InDate:    input.InDate,
		OutDate:   input.OutDate,
		Guests:    guests,
		Name:      strings.TrimSpace(input.Name),
		Tel:       strings.TrimSpace(input.Tel),
		Notes:     strings.TrimSpace(input.Notes),
		Price:     models.NewMoneyFromDecimal(total),
		Status:    constants.HotelOrderStatusBooked,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// 预订成功后异步补齐当期周期账单
	if s.queueClient.Enabled() {
		payload := queue.BillGeneratePayload{UserID: input.UserID, Period: time.Now().Format("2006-01")}
		if err := s.queueClient.EnqueueBillGenerate(payload); err != nil {
			logger.Warnw("hotel_book_enqueue_bill_generate_failed", "order_no", order.OrderNo, "error", err)
		}
	}
	return order, nil
}

// ListByUser 当前用户预订列表
func (s *HotelOrderService) ListByUser(userID uint, filter repository.HotelOrderListFilter) ([]models.HotelOrder, int64, error) {
	filter.UserID = userID
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 20
	}
	return s.orderRepo.List(filter)
}

// GetByUser 获取当前用户的预订详情
func (s *HotelOrderService) GetByUser(userID, orderID uint) (*models.HotelOrder, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	if order.UserID != userID {
		return nil, ErrPermissionDenied
	}
	return order, nil
}

// Cancel 取消预订（仅未确认订单）
func (s *HotelOrderService) Cancel(userID, orderID uint) error {
	order, err := s.GetByUser(userID, orderID)
	if err != nil {
		return err
	}
	affected, err := s.orderRepo.UpdateStatus(order.ID, constants.HotelOrderStatusBooked, constants.HotelOrderStatusCanceled)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderStatusInvalid
	}
	return nil
}

// Confirm 确认入住（仅已预订订单）
func (s *HotelOrderService) Confirm(userID, orderID uint) error {
	order, err := s.GetByUser(userID, orderID)
	if err != nil {
		return err
	}
	affected, err := s.orderRepo.UpdateStatus(order.ID, constants.HotelOrderStatusBooked, constants.HotelOrderStatusConfirmed)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrOrderStatusInvalid
	}
	return nil
}

// nightsBetween 间夜数，按日历日零点差值计算
func nightsBetween(in, out time.Time) int {
	inDay := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, in.Location())
	outDay := time.Date(out.Year(), out.Month(), out.Day(), 0, 0, 0, 0, out.Location())
	return int(outDay.Sub(inDay).Hours() / 24)
}
