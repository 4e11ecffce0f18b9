package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"turnstone_admin_v1/internal/controller"
	"turnstone_admin_v1/internal/middleware"

	_ "turnstone_admin_v1/docs"
)

// preflight OPTIONS 终点，响应头由 CORS 中间件写入
func preflight(ctx *gin.Context) {
	ctx.Status(http.StatusNoContent)
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine,
	authCtl *controller.AuthController,
	storeCtl *controller.StoreController,
	productCtl *controller.ProductController,
	shippingCtl *controller.ShippingController,
	sizeCtl *controller.SizeController,
	categoryCtl *controller.CategoryController,
	galleryCtl *controller.GalleryController,
	orderCtl *controller.OrderController,
	checkoutCtl *controller.CheckoutController,
	uploadCtl *controller.UploadController) {
	// 1. Swagger 文档路由
	// 访问 http://localhost:8080/swagger/index.html 即可查看
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")

	// 2. 公开接口：商城前台结账 + 支付回调
	public := api.Group("")
	public.Use(middleware.CORS())
	{
		// POST /api/v1/stores/:storeId/checkout
		// 浏览器预检走 OPTIONS，必须注册成路由才能命中分组中间件
		public.POST("/stores/:storeId/checkout",
			middleware.Throttle("checkout", 3*time.Second),
			checkoutCtl.Checkout)
		public.OPTIONS("/stores/:storeId/checkout", preflight)

		// POST /api/v1/payment/webhook
		public.POST("/payment/webhook", checkoutCtl.Webhook)
		public.OPTIONS("/payment/webhook", preflight)
	}

	// 3. 认证接口
	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.POST("/refresh", authCtl.RefreshToken)
	}

	// 4. 后台管理接口（JWT 保护）
	admin := api.Group("")
	admin.Use(middleware.JWTAuth())
	{
		admin.POST("/upload", uploadCtl.Upload)
		admin.POST("/upload/from-url", uploadCtl.UploadFromURL)

		admin.GET("/stores", storeCtl.GetList)
		admin.POST("/stores", storeCtl.Create)

		store := admin.Group("/stores/:storeId")
		{
			// 商品
			store.GET("/products", productCtl.GetList)
			store.POST("/products", productCtl.Create)
			store.GET("/products/:productId", productCtl.GetDetail)
			store.PATCH("/products/:productId", productCtl.Update)
			store.DELETE("/products/:productId", productCtl.Delete)
			store.POST("/products/:productId/generate", productCtl.GenerateCopy)

			// 运费方式
			store.GET("/shippings", shippingCtl.GetList)
			store.POST("/shippings", shippingCtl.Create)
			store.GET("/shippings/:shippingId", shippingCtl.GetDetail)
			store.PATCH("/shippings/:shippingId", shippingCtl.Update)
			store.DELETE("/shippings/:shippingId", shippingCtl.Delete)

			// 尺码
			store.GET("/sizes", sizeCtl.GetList)
			store.POST("/sizes", sizeCtl.Create)
			store.GET("/sizes/:sizeId", sizeCtl.GetDetail)
			store.PATCH("/sizes/:sizeId", sizeCtl.Update)
			store.DELETE("/sizes/:sizeId", sizeCtl.Delete)

			// 分类
			store.GET("/categories", categoryCtl.GetList)
			store.POST("/categories", categoryCtl.Create)
			store.PATCH("/categories/:categoryId", categoryCtl.Update)
			store.DELETE("/categories/:categoryId", categoryCtl.Delete)

			// 图库
			store.GET("/gallery", galleryCtl.Get)
			store.POST("/gallery", galleryCtl.Upsert)
			store.PATCH("/gallery", galleryCtl.Upsert)

			// 订单
			store.GET("/orders", orderCtl.GetList)
		}
	}
}
