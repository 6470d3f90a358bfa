package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/queue"
	"github.com/xihu-next/internal/repository"
)

func setupHotelOrderServiceTest(t *testing.T) (*HotelOrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Hotel{}, &models.HotelRoom{}, &models.HotelOrder{}); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new queue client failed: %v", err)
	}
	svc := NewHotelOrderService(repository.NewHotelRepository(db), repository.NewHotelOrderRepository(db), queueClient)
	return svc, db
}

func seedHotelWithRoom(t *testing.T, db *gorm.DB, roomPrice string, full bool) (models.Hotel, models.HotelRoom) {
	t.Helper()
	hotel := models.Hotel{Name: "西湖宾馆", Province: "浙江", City: "杭州", Level: 4, Img: "/img/hotel.jpg"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seed hotel failed: %v", err)
	}
	room := models.HotelRoom{HotelID: hotel.ID, Name: "标准间", Price: mustMoney(t, roomPrice), Full: full}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seed room failed: %v", err)
	}
	return hotel, room
}

func TestBookComputesNightlyTotal(t *testing.T) {
	svc, db := setupHotelOrderServiceTest(t)
	hotel, room := seedHotelWithRoom(t, db, "300.00", false)

	in := time.Date(2026, 9, 1, 14, 0, 0, 0, time.Local)
	out := time.Date(2026, 9, 4, 12, 0, 0, 0, time.Local)
	order, err := svc.Book(BookInput{
		UserID:  1,
		HotelID: hotel.ID,
		RoomID:  room.ID,
		InDate:  in,
		OutDate: out,
		Guests:  2,
		Name:    "李四",
		Tel:     "13900000000",
	})
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}
	// 3 晚 × 300.00
	if order.Price.String() != "900.00" {
		t.Fatalf("expected total 900.00, got %s", order.Price)
	}
	if order.Status != constants.HotelOrderStatusBooked {
		t.Fatalf("new booking should be booked, got %s", order.Status)
	}
	if order.HotelName != hotel.Name || order.RoomName != room.Name {
		t.Fatalf("order should carry snapshots: %+v", order)
	}
}

func TestBookRejectsInvalidInput(t *testing.T) {
	svc, db := setupHotelOrderServiceTest(t)
	hotel, room := seedHotelWithRoom(t, db, "300.00", false)

	in := time.Date(2026, 9, 4, 14, 0, 0, 0, time.Local)
	out := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	if _, err := svc.Book(BookInput{UserID: 1, HotelID: hotel.ID, RoomID: room.ID, InDate: in, OutDate: out}); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}
	// 同日入住离店也不成立
	if _, err := svc.Book(BookInput{UserID: 1, HotelID: hotel.ID, RoomID: room.ID, InDate: in, OutDate: in}); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	valid := BookInput{
		UserID:  1,
		HotelID: 999,
		RoomID:  room.ID,
		InDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		OutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local),
	}
	if _, err := svc.Book(valid); !errors.Is(err, ErrHotelNotFound) {
		t.Fatalf("expected ErrHotelNotFound, got %v", err)
	}
}

func TestBookRejectsFullRoom(t *testing.T) {
	svc, db := setupHotelOrderServiceTest(t)
	hotel, room := seedHotelWithRoom(t, db, "300.00", true)

	_, err := svc.Book(BookInput{
		UserID:  1,
		HotelID: hotel.ID,
		RoomID:  room.ID,
		InDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		OutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local),
	})
	if !errors.Is(err, ErrRoomNotAvailable) {
		t.Fatalf("expected ErrRoomNotAvailable, got %v", err)
	}
}

func TestCancelBooking(t *testing.T) {
	svc, db := setupHotelOrderServiceTest(t)
	hotel, room := seedHotelWithRoom(t, db, "300.00", false)

	order, err := svc.Book(BookInput{
		UserID:  1,
		HotelID: hotel.ID,
		RoomID:  room.ID,
		InDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		OutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}

	if err := svc.Cancel(2, order.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("other users must not cancel: %v", err)
	}
	if err := svc.Cancel(1, order.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := svc.Cancel(1, order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("double cancel should fail, got %v", err)
	}
}

func TestConfirmBooking(t *testing.T) {
	svc, db := setupHotelOrderServiceTest(t)
	hotel, room := seedHotelWithRoom(t, db, "300.00", false)

	order, err := svc.Book(BookInput{
		UserID:  1,
		HotelID: hotel.ID,
		RoomID:  room.ID,
		InDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local),
		OutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local),
	})
	if err != nil {
		t.Fatalf("book failed: %v", err)
	}

	if err := svc.Confirm(1, order.ID); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	got, err := svc.GetByUser(1, order.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != constants.HotelOrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %s", got.Status)
	}

	// 已确认订单不可再取消或重复确认
	if err := svc.Cancel(1, order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("cancel after confirm should fail, got %v", err)
	}
	if err := svc.Confirm(1, order.ID); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("double confirm should fail, got %v", err)
	}
}
