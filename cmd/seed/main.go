package main

import (
	"fmt"
	"time"

	"github.com/xihu-next/internal/config"
	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/models"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 添加商品
	products := []models.Product{
		{
			Name:        "无线蓝牙耳机",
			Description: "高品质音质，长续航，舒适佩戴",
			PriceAmount: models.NewMoneyFromFloat(99.90),
			Cover:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=800",
			}),
			Stock:    200,
			Tags:     models.StringArray([]string{"数码", "音频"}),
			Category: "数码",
			Brand:    "声浪",
			IsActive: true,
		},
		{
			Name:        "智能手表",
			Description: "健康监测，运动追踪，消息提醒",
			PriceAmount: models.NewMoneyFromFloat(199.00),
			Cover:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
			Images: models.StringArray([]string{
				"https://images.unsplash.com/photo-1579586337278-3befd40fd17a?w=800",
			}),
			Stock:    120,
			Tags:     models.StringArray([]string{"数码", "穿戴"}),
			Category: "数码",
			Brand:    "腕际",
			IsActive: true,
		},
		{
			Name:        "便携充电宝",
			Description: "大容量，快速充电，多设备兼容",
			PriceAmount: models.NewMoneyFromFloat(49.90),
			Cover:       "https://images.unsplash.com/photo-1609091839311-d5365f9ff1c5?w=800",
			Stock:       500,
			Tags:        models.StringArray([]string{"配件"}),
			Category:    "配件",
			Brand:       "闪充",
			IsActive:    true,
		},
		{
			Name:        "多功能背包",
			Description: "大容量，防水防盗，USB充电接口",
			PriceAmount: models.NewMoneyFromFloat(79.90),
			Cover:       "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800",
			Stock:       80,
			Tags:        models.StringArray([]string{"生活", "出行"}),
			Category:    "生活",
			Brand:       "行者",
			IsActive:    true,
		},
		{
			Name:        "保温杯",
			Description: "316不锈钢内胆，12小时长效保温",
			PriceAmount: models.NewMoneyFromFloat(39.90),
			Stock:       300,
			Tags:        models.StringArray([]string{"生活"}),
			Category:    "生活",
			Brand:       "暖冬",
			IsActive:    true,
		},
		{
			Name:        "下架演示商品",
			Description: "该商品已下架，不可加入购物车",
			PriceAmount: models.NewMoneyFromFloat(9.90),
			Stock:       10,
			Category:    "生活",
			IsActive:    false,
		},
	}

	for _, prod := range products {
		var existing models.Product
		if err := models.DB.Where("name = ?", prod.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Name)
			}
		} else {
			existing.Description = prod.Description
			existing.PriceAmount = prod.PriceAmount
			existing.Cover = prod.Cover
			existing.Images = prod.Images
			existing.Stock = prod.Stock
			existing.Tags = prod.Tags
			existing.Category = prod.Category
			existing.Brand = prod.Brand
			existing.IsActive = prod.IsActive
			if err := models.DB.Save(&existing).Error; err != nil {
				stdLog.Printf("Failed to update product %s: %v", prod.Name, err)
			} else {
				stdLog.Printf("Updated product: %s", prod.Name)
			}
		}
	}

	// 添加酒店与房型
	type roomPlan struct {
		Name    string
		Content string
		Price   float64
		Full    bool
	}
	hotelPlans := []struct {
		Hotel models.Hotel
		Rooms []roomPlan
	}{
		{
			Hotel: models.Hotel{
				Name:     "西湖云栖度假酒店",
				Content:  "坐落于西湖景区南线，步行可达雷峰塔与苏堤，湖景房视野开阔。",
				Img:      "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=1200",
				Tel:      "0571-87654321",
				Address:  "杭州市西湖区南山路 18 号",
				Level:    5,
				Score:    4.8,
				Province: "浙江省",
				City:     "杭州市",
				MinPrice: models.NewMoneyFromFloat(680.00),
			},
			Rooms: []roomPlan{
				{Name: "湖景大床房", Content: "45㎡ 落地窗湖景", Price: 980.00},
				{Name: "园景双床房", Content: "38㎡ 庭院景观", Price: 680.00},
				{Name: "云栖套房", Content: "88㎡ 一室一厅", Price: 1880.00, Full: true},
			},
		},
		{
			Hotel: models.Hotel{
				Name:     "运河客栈",
				Content:  "大运河畔的百年老宅改建，保留木结构院落，闹中取静。",
				Img:      "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=1200",
				Tel:      "0571-86543210",
				Address:  "杭州市拱墅区桥弄街 27 号",
				Level:    3,
				Score:    4.5,
				Province: "浙江省",
				City:     "杭州市",
				MinPrice: models.NewMoneyFromFloat(268.00),
			},
			Rooms: []roomPlan{
				{Name: "标准大床房", Content: "28㎡ 运河侧窗", Price: 268.00},
				{Name: "家庭房", Content: "42㎡ 一大床一小床", Price: 398.00},
			},
		},
		{
			Hotel: models.Hotel{
				Name:     "钱塘湾国际酒店",
				Content:  "钱江新城 CBD 商务酒店，近地铁 4 号线，含行政酒廊与恒温泳池。",
				Img:      "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=1200",
				Tel:      "0571-85432109",
				Address:  "杭州市上城区富春路 701 号",
				Level:    4,
				Score:    4.6,
				Province: "浙江省",
				City:     "杭州市",
				MinPrice: models.NewMoneyFromFloat(458.00),
			},
			Rooms: []roomPlan{
				{Name: "商务大床房", Content: "36㎡ 城景", Price: 458.00},
				{Name: "行政江景房", Content: "40㎡ 含酒廊礼遇", Price: 758.00},
			},
		},
	}

	for _, plan := range hotelPlans {
		var hotel models.Hotel
		if err := models.DB.Where("name = ?", plan.Hotel.Name).First(&hotel).Error; err != nil {
			hotel = plan.Hotel
			if err := models.DB.Create(&hotel).Error; err != nil {
				stdLog.Printf("Failed to create hotel %s: %v", plan.Hotel.Name, err)
				continue
			}
			stdLog.Printf("Created hotel: %s", hotel.Name)
		} else {
			stdLog.Printf("Hotel already exists: %s", hotel.Name)
		}

		for _, room := range plan.Rooms {
			var existing models.HotelRoom
			if err := models.DB.Where("hotel_id = ? AND name = ?", hotel.ID, room.Name).First(&existing).Error; err != nil {
				item := models.HotelRoom{
					HotelID: hotel.ID,
					Name:    room.Name,
					Img:     hotel.Img,
					Content: room.Content,
					Price:   models.NewMoneyFromFloat(room.Price),
					Full:    room.Full,
				}
				if err := models.DB.Create(&item).Error; err != nil {
					stdLog.Printf("Failed to create room %s/%s: %v", hotel.Name, room.Name, err)
				} else {
					stdLog.Printf("Created room: %s/%s", hotel.Name, room.Name)
				}
			}
		}
	}

	// 添加演示用户与周期账单
	demoUser := seedDemoUser(stdLog)
	if demoUser != nil {
		seedDemoBills(stdLog, demoUser.ID)
	}

	fmt.Println("\n✅ Seed data created successfully!")
	fmt.Println("Summary:")
	fmt.Println("- 6 Products")
	fmt.Println("- 3 Hotels with rooms")
	fmt.Println("- 1 Demo user (demo / demo123456)")
	fmt.Println("- Demo payment bills")
}

func seedDemoUser(stdLog interface{ Printf(string, ...interface{}) }) *models.User {
	var existing models.User
	if err := models.DB.Where("username = ?", "demo").First(&existing).Error; err == nil {
		stdLog.Printf("Demo user already exists")
		return &existing
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("demo123456"), bcrypt.DefaultCost)
	if err != nil {
		stdLog.Printf("Failed to hash demo password: %v", err)
		return nil
	}
	user := models.User{
		Username:     "demo",
		PasswordHash: string(hash),
		Nickname:     "演示用户",
		Status:       constants.UserStatusActive,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		stdLog.Printf("Failed to create demo user: %v", err)
		return nil
	}
	stdLog.Printf("Created demo user: demo")
	return &user
}

func seedDemoBills(stdLog interface{ Printf(string, ...interface{}) }, userID uint) {
	period := time.Now().Format("2006-01")
	dueDate := time.Now().AddDate(0, 0, 20)
	bills := []models.PaymentBill{
		{
			UserID:        userID,
			BillNumber:    fmt.Sprintf("BLW%s0001", time.Now().Format("20060102")),
			BillType:      constants.BillTypeWater,
			TypeName:      "水费",
			TypeIcon:      "/img/bill/water.png",
			AccountName:   "演示用户",
			AccountNumber: "3301000001",
			BillPeriod:    period,
			BillAmount:    models.NewMoneyFromFloat(42.50),
			DueDate:       dueDate,
			Status:        constants.BillStatusPending,
		},
		{
			UserID:        userID,
			BillNumber:    fmt.Sprintf("BLE%s0001", time.Now().Format("20060102")),
			BillType:      constants.BillTypeElectric,
			TypeName:      "电费",
			TypeIcon:      "/img/bill/electric.png",
			AccountName:   "演示用户",
			AccountNumber: "3301000002",
			BillPeriod:    period,
			BillAmount:    models.NewMoneyFromFloat(156.80),
			DueDate:       dueDate,
			Status:        constants.BillStatusPending,
		},
	}
	for _, bill := range bills {
		var existing models.PaymentBill
		if err := models.DB.Where("user_id = ? AND bill_type = ? AND bill_period = ?", bill.UserID, bill.BillType, bill.BillPeriod).First(&existing).Error; err == nil {
			continue
		}
		if err := models.DB.Create(&bill).Error; err != nil {
			stdLog.Printf("Failed to create bill %s: %v", bill.BillNumber, err)
		} else {
			stdLog.Printf("Created bill: %s", bill.BillNumber)
		}
	}
}
