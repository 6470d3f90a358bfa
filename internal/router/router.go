package router

import (
	"fmt"
	"strings"

	"github.com/xihu-next/internal/cache"
	"github.com/xihu-next/internal/config"
	publichandlers "github.com/xihu-next/internal/http/handlers/public"
	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "xh"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
		Message:       "登录尝试过于频繁，请 %d 秒后重试",
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开接口
		public := apiV1.Group("/public")
		{
			public.GET("/captcha/image", publicHandler.GetCaptcha)
			public.GET("/shop/products", publicHandler.ListProducts)
			public.GET("/shop/products/:id", publicHandler.GetProduct)
			public.GET("/hc/hotels", publicHandler.ListHotels)
			public.GET("/hc/hotels/hot", publicHandler.ListHotHotels)
			public.GET("/hc/hotels/:id", publicHandler.GetHotel)
			public.GET("/hc/provinces", publicHandler.ListProvinces)
			public.GET("/hc/cities", publicHandler.ListCities)
		}

		// 用户认证接口
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("username")), publicHandler.Login)
		}

		// 购物车接口（登录用户与匿名会话共用）
		cartGroup := apiV1.Group("/cart")
		cartGroup.Use(OptionalUserAuthMiddleware(cfg.UserJWT.SecretKey))
		{
			cartGroup.GET("", publicHandler.GetCart)
			cartGroup.POST("/items", publicHandler.UpdateCartItem)
			cartGroup.DELETE("/items/:id", publicHandler.RemoveCartItem)
			cartGroup.DELETE("", publicHandler.ClearCart)
		}

		// 会话状态（匿名也可访问）
		apiV1.GET("/user/session", OptionalUserAuthMiddleware(cfg.UserJWT.SecretKey), publicHandler.Session)

		// 用户接口（需鉴权）
		user := apiV1.Group("")
		user.Use(UserJWTAuthMiddleware(cfg.UserJWT.SecretKey, c.UserRepo))
		{
			user.GET("/me", publicHandler.GetProfile)
			user.POST("/auth/logout", publicHandler.Logout)

			user.POST("/shop/orders/checkout", publicHandler.Checkout)
			user.GET("/shop/orders", publicHandler.ListShopOrders)
			user.GET("/shop/orders/:id", publicHandler.GetShopOrder)
			user.POST("/shop/orders/:id/pay", publicHandler.PayShopOrder)
			user.POST("/shop/orders/:id/cancel", publicHandler.CancelShopOrder)

			user.POST("/hc/book", publicHandler.BookHotel)
			user.GET("/hc/orders", publicHandler.ListHotelOrders)
			user.GET("/hc/orders/:id", publicHandler.GetHotelOrder)
			user.POST("/hc/orders/:id/cancel", publicHandler.CancelHotelOrder)
			user.POST("/hc/orders/:id/confirm", publicHandler.ConfirmHotelOrder)

			user.GET("/payment/bills", publicHandler.ListBills)
			user.GET("/payment/bills/stats", publicHandler.GetBillStats)
			user.GET("/payment/bills/:id", publicHandler.GetBill)
			user.POST("/payment/bills/:id/pay", publicHandler.PayBill)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
