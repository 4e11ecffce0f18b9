package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"turnstone_admin_v1/internal/controller"
	"turnstone_admin_v1/internal/middleware"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
	"turnstone_admin_v1/internal/router"
	"turnstone_admin_v1/internal/service"
	"turnstone_admin_v1/internal/task"
	"turnstone_admin_v1/pkg/database"
)

// @title Turnstone Admin API
// @version 1.0
// @description 多店铺后台管理与结账服务
// @BasePath /
func main() {
	// 1. 初始化数据库
	db := initDatabase()

	// 2. 初始化依赖
	deps := initDependencies(db)

	// 3. 启动定时任务
	initTasks(deps)

	// 4. 初始化路由
	r := gin.Default()
	router.InitRoutes(r,
		deps.Controllers.Auth,
		deps.Controllers.Store,
		deps.Controllers.Product,
		deps.Controllers.Shipping,
		deps.Controllers.Size,
		deps.Controllers.Category,
		deps.Controllers.Gallery,
		deps.Controllers.Order,
		deps.Controllers.Checkout,
		deps.Controllers.Upload,
	)

	// 5. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User     repository.UserRepository
	Store    repository.StoreRepository
	Product  repository.ProductRepository
	Shipping repository.ShippingRepository
	Size     repository.SizeRepository
	Category repository.CategoryRepository
	Gallery  repository.GalleryRepository
	Order    repository.OrderRepository
}

// Services 服务集合
type Services struct {
	Auth     *service.AuthService
	Store    *service.StoreService
	Product  *service.ProductService
	Shipping *service.ShippingService
	Size     *service.SizeService
	Category *service.CategoryService
	Gallery  *service.GalleryService
	Order    *service.OrderService
	Checkout *service.CheckoutService
	AI       *service.AIService
	Storage  service.StorageProvider
	Payment  service.PaymentProvider
}

// Controllers 控制器集合
type Controllers struct {
	Auth     *controller.AuthController
	Store    *controller.StoreController
	Product  *controller.ProductController
	Shipping *controller.ShippingController
	Size     *controller.SizeController
	Category *controller.CategoryController
	Gallery  *controller.GalleryController
	Order    *controller.OrderController
	Checkout *controller.CheckoutController
	Upload   *controller.UploadController
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_URL",
		"host=localhost user=postgres password=postgres dbname=turnstone port=5432 sslmode=disable")

	return database.InitDB(dsn,
		// Manager
		&model.SysUser{},
		// Store
		&model.Store{},
		// Catalog
		&model.Size{}, &model.Category{}, &model.Shipping{},
		// Product
		&model.Product{}, &model.Color{}, &model.ProductImage{},
		// Gallery
		&model.Gallery{}, &model.GalleryImage{},
		// Order
		&model.Order{}, &model.OrderItem{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// JWT 配置
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey:       getEnv("JWT_SECRET", middleware.DefaultJWTConfig().SecretKey),
		AccessTokenTTL:  2 * time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
		Issuer:          "turnstone-admin",
	})

	// -------- Repo 层 --------
	repos := &Repositories{
		User:     repository.NewUserRepository(db),
		Store:    repository.NewStoreRepository(db),
		Product:  repository.NewProductRepository(db),
		Shipping: repository.NewShippingRepository(db),
		Size:     repository.NewSizeRepository(db),
		Category: repository.NewCategoryRepository(db),
		Gallery:  repository.NewGalleryRepository(db),
		Order:    repository.NewOrderRepository(db),
	}

	// -------- 外部服务 --------
	payment := service.NewStripeProvider(service.StripeConfig{
		SecretKey:     getEnv("STRIPE_API_KEY", ""),
		WebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
	})
	storage := initStorage()
	aiSvc := service.NewAIService(getEnv("GEMINI_API_KEY", ""), getEnv("GEMINI_MODEL", ""))

	// -------- 业务服务 --------
	storeSvc := service.NewStoreService(repos.Store)
	services := &Services{
		Auth:     service.NewAuthService(repos.User),
		Store:    storeSvc,
		Product:  service.NewProductService(repos.Product, repos.Shipping, storeSvc),
		Shipping: service.NewShippingService(repos.Shipping, repos.Product, storeSvc),
		Size:     service.NewSizeService(repos.Size, storeSvc),
		Category: service.NewCategoryService(repos.Category, storeSvc),
		Gallery:  service.NewGalleryService(repos.Gallery, storeSvc),
		Order:    service.NewOrderService(repos.Order, payment),
		Checkout: service.NewCheckoutService(repos.Product, repos.Order, repos.Store, payment,
			service.CheckoutConfig{FrontendURL: getEnv("FRONTEND_STORE_URL", "http://localhost:3000")}),
		AI:      aiSvc,
		Storage: storage,
		Payment: payment,
	}

	// 首次启动时创建默认管理员
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := services.Auth.EnsureAdmin(ctx,
		getEnv("ADMIN_USERNAME", "admin"),
		getEnv("ADMIN_PASSWORD", "")); err != nil {
		log.Printf("警告: 创建默认管理员失败: %v", err)
	}

	// -------- Controller 层 --------
	controllers := &Controllers{
		Auth:     controller.NewAuthController(services.Auth),
		Store:    controller.NewStoreController(services.Store),
		Product:  controller.NewProductController(services.Product, services.AI),
		Shipping: controller.NewShippingController(services.Shipping),
		Size:     controller.NewSizeController(services.Size),
		Category: controller.NewCategoryController(services.Category),
		Gallery:  controller.NewGalleryController(services.Gallery),
		Order:    controller.NewOrderController(services.Order, services.Store),
		Checkout: controller.NewCheckoutController(services.Checkout, services.Order),
		Upload:   controller.NewUploadController(services.Storage),
	}

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initStorage 初始化存储服务
func initStorage() service.StorageProvider {
	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Bucket:    getEnv("AWS_BUCKET", ""),
		Region:    getEnv("AWS_REGION", ""),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "turnstone"),
		LocalDir:  getEnv("UPLOAD_DIR", "./uploads"),
		BaseURL:   getEnv("UPLOAD_BASE_URL", ""),
	})
	if err != nil {
		log.Fatalf("存储服务初始化失败: %v", err)
	}
	return storage
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 超时未支付订单清理
	cleanupTask := task.NewOrderCleanupTask(deps.Repos.Order)
	cleanupTask.Start()

	log.Println("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "8080")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		log.Printf("服务启动在 :%s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务...")

	// 优雅关闭
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("服务强制关闭: %v", err)
	}

	log.Println("服务已退出")
}

// ==================== 工具函数 ====================

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
