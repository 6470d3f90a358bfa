package provider

import (
	"time"

	"github.com/xihu-next/internal/cache"
	"github.com/xihu-next/internal/cart"
	"github.com/xihu-next/internal/config"
	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/models"
	"github.com/xihu-next/internal/queue"
	"github.com/xihu-next/internal/repository"
	"github.com/xihu-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client
	CartStorage cart.Storage

	// Repositories
	UserRepo        repository.UserRepository
	ProductRepo     repository.ProductRepository
	HotelRepo       repository.HotelRepository
	HotelOrderRepo  repository.HotelOrderRepository
	ShopOrderRepo   repository.ShopOrderRepository
	PaymentBillRepo repository.PaymentBillRepository

	// Services
	UserAuthService   *service.UserAuthService
	CaptchaService    *service.CaptchaService
	ProductService    *service.ProductService
	CartService       *service.CartService
	ShopOrderService  *service.ShopOrderService
	HotelService      *service.HotelService
	HotelOrderService *service.HotelOrderService
	PaymentService    *service.PaymentService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	// 初始化队列客户端
	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initCartStorage()
	c.initRepositories()
	c.initServices()

	return c
}

// initCartStorage Redis 可用时使用 Redis 槽位，否则退化为进程内存储
func (c *Container) initCartStorage() {
	ttlHours := c.Config.Cart.TTLHours
	if ttlHours <= 0 {
		ttlHours = 720
	}
	if cache.Enabled() {
		c.CartStorage = cart.NewRedisStorage(time.Duration(ttlHours) * time.Hour)
		return
	}
	logger.Warnw("cart_storage_fallback_memory", "reason", "redis_disabled")
	c.CartStorage = cart.NewMemoryStorage()
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.HotelRepo = repository.NewHotelRepository(db)
	c.HotelOrderRepo = repository.NewHotelOrderRepository(db)
	c.ShopOrderRepo = repository.NewShopOrderRepository(db)
	c.PaymentBillRepo = repository.NewPaymentBillRepository(db)
}

func (c *Container) initServices() {
	c.UserAuthService = service.NewUserAuthService(c.Config, c.UserRepo)
	c.CaptchaService = service.NewCaptchaService(c.Config.Captcha)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartStorage, c.ProductRepo)
	c.ShopOrderService = service.NewShopOrderService(
		c.ShopOrderRepo,
		c.ProductRepo,
		c.CartService,
		c.QueueClient,
		c.Config.Order.PaymentExpireMinutes,
	)
	c.HotelService = service.NewHotelService(c.HotelRepo)
	c.HotelOrderService = service.NewHotelOrderService(c.HotelRepo, c.HotelOrderRepo, c.QueueClient)
	c.PaymentService = service.NewPaymentService(c.PaymentBillRepo)
}
