package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"turnstone_admin_v1/internal/model"
)

// ==================== 测试模型 ====================
// 不直接 AutoMigrate 真实模型：stores 的 text[] 列 sqlite 吃不下，
// 关联迁移还会把它牵出来。按真实表列名建精简表，仓储查询照常工作。

type TestStore struct {
	ID           int64 `gorm:"primaryKey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt
	Name         string
	UserID       int64
	CurrencyCode string
}

func (TestStore) TableName() string { return "stores" }

type TestSysUser struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	Username  string
	Password  string
	Email     string
	Role      string
	IsActive  bool
}

func (TestSysUser) TableName() string { return "sys_users" }

type TestShipping struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	StoreID   int64
	Name      string
	IsFixed   bool
	Price     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Width     decimal.Decimal `gorm:"type:decimal(12,2)"`
	Height    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Length    decimal.Decimal `gorm:"type:decimal(12,2)"`
	Weight    decimal.Decimal `gorm:"type:decimal(12,2)"`
}

func (TestShipping) TableName() string { return "shippings" }

type TestProduct struct {
	ID          int64 `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	StoreID     int64
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(12,2)"`
	Size        string
	CategoryID  int64
	ShippingID  int64
	IsFeatured  bool
	IsArchived  bool
}

func (TestProduct) TableName() string { return "products" }

type TestColor struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	ProductID int64
	Name      string
	Value     string
}

func (TestColor) TableName() string { return "colors" }

type TestProductImage struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	ProductID int64
	Url       string
	Sort      int
}

func (TestProductImage) TableName() string { return "product_images" }

type TestSize struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	StoreID   int64
	Name      string
	Value     string
	Sort      int
}

func (TestSize) TableName() string { return "sizes" }

type TestCategory struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	StoreID   int64
	Name      string
}

func (TestCategory) TableName() string { return "categories" }

type TestGallery struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	StoreID   int64
}

func (TestGallery) TableName() string { return "galleries" }

type TestGalleryImage struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	GalleryID int64
	Url       string
	Sort      int
}

func (TestGalleryImage) TableName() string { return "gallery_images" }

type TestOrder struct {
	ID          int64 `gorm:"primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt
	StoreID     int64
	IsPaid      bool
	PaidAt      *time.Time
	Phone       string
	Address     string
	SessionID   string
	SessionData []byte
}

func (TestOrder) TableName() string { return "orders" }

type TestOrderItem struct {
	ID        int64 `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
	OrderID   int64
	ProductID int64
}

func (TestOrderItem) TableName() string { return "order_items" }

// ==================== 测试辅助 ====================

func setupServiceTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}

	err = db.AutoMigrate(
		&TestStore{}, &TestSysUser{},
		&TestShipping{},
		&TestProduct{}, &TestColor{}, &TestProductImage{},
		&TestSize{}, &TestCategory{},
		&TestGallery{}, &TestGalleryImage{},
		&TestOrder{}, &TestOrderItem{},
	)
	if err != nil {
		t.Fatalf("数据库迁移失败: %v", err)
	}
	return db
}

// seedStore 建店铺，归属校验用
func seedStore(t *testing.T, db *gorm.DB, storeID int64, userID int64) {
	store := TestStore{ID: storeID, Name: "测试店铺", UserID: userID, CurrencyCode: "CAD"}
	if err := db.Create(&store).Error; err != nil {
		t.Fatalf("创建店铺失败: %v", err)
	}
}

// seedProduct 建一个带颜色/图片/运费方式的商品
func seedProduct(t *testing.T, db *gorm.DB, storeID int64, name string, price string, shippingPrice string) *model.Product {
	shipping := &model.Shipping{
		StoreID: storeID,
		Name:    name + " shipping",
		IsFixed: true,
		Price:   mustDecimal(t, shippingPrice),
	}
	if err := db.Create(shipping).Error; err != nil {
		t.Fatalf("创建运费方式失败: %v", err)
	}

	product := &model.Product{
		StoreID:    storeID,
		Name:       name,
		Price:      mustDecimal(t, price),
		Size:       "8.5 x 11",
		ShippingID: shipping.ID,
		Colors: []model.Color{
			{Name: "Black", Value: "#000"},
			{Name: "White", Value: "#fff"},
		},
		Images: []model.ProductImage{
			{Url: "https://cdn.example.com/" + name + "-main.jpg", Sort: 0},
			{Url: "https://cdn.example.com/" + name + "-alt.jpg", Sort: 1},
		},
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("创建商品失败: %v", err)
	}
	return product
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("解析 decimal 失败: %v", err)
	}
	return d
}

// fakePayment 记录调用的假支付网关
type fakePayment struct {
	sessions  []PaymentSessionReq
	failNext  bool
	verifyErr error
}

func (f *fakePayment) CreateSession(ctx context.Context, req PaymentSessionReq) (*PaymentSession, error) {
	if f.failNext {
		return nil, fmt.Errorf("支付网关拒绝 (Status 402): card_declined")
	}
	f.sessions = append(f.sessions, req)
	return &PaymentSession{
		ID:  fmt.Sprintf("cs_test_%d", len(f.sessions)),
		URL: fmt.Sprintf("https://pay.example.com/cs_test_%d", len(f.sessions)),
	}, nil
}

func (f *fakePayment) VerifySignature(payload []byte, sigHeader string) error {
	return f.verifyErr
}
