package model

import "github.com/shopspring/decimal"

// Product 商品模型
type Product struct {
	BaseModel

	// 关联店铺
	StoreID int64  `gorm:"index;not null;comment:关联店铺ID"`
	Store   *Store `gorm:"foreignKey:StoreID"`

	// 商品基本信息
	Name        string `gorm:"size:255;not null;comment:商品名称"`
	Description string `gorm:"type:text;comment:商品描述"`

	// 价格（高精度小数，分转换只在结账报价时做）
	Price decimal.Decimal `gorm:"type:decimal(12,2);comment:单价"`

	// 尺码标签（展示用，如 "8.5 x 11"）
	Size string `gorm:"size:100;comment:尺码标签"`

	// 分类 / 运费方式
	CategoryID int64     `gorm:"index;default:0;comment:分类ID"`
	Category   *Category `gorm:"foreignKey:CategoryID"`
	ShippingID int64     `gorm:"index;not null;comment:运费方式ID"`
	Shipping   *Shipping `gorm:"foreignKey:ShippingID"`

	// 展示开关
	IsFeatured bool `gorm:"default:false;comment:是否首页推荐"`
	IsArchived bool `gorm:"default:false;comment:是否下架"`

	// 关联数据（一对多）
	Colors []Color        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Images []ProductImage `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string {
	return "products"
}

// Color 商品颜色变体
// 变体在结账请求里按它在商品颜色列表中的下标被选中
type Color struct {
	BaseModel

	ProductID int64    `gorm:"index;not null;comment:关联商品ID"`
	Product   *Product `gorm:"foreignKey:ProductID"`

	Name  string `gorm:"size:100;not null;comment:颜色名称"`
	Value string `gorm:"size:20;comment:颜色值(hex)"`
}

func (Color) TableName() string {
	return "colors"
}

// ProductImage 商品图片
type ProductImage struct {
	BaseModel

	ProductID int64    `gorm:"index;not null;comment:关联商品ID"`
	Product   *Product `gorm:"foreignKey:ProductID"`

	Url  string `gorm:"size:512;not null;comment:图片URL"`
	Sort int    `gorm:"default:0;comment:排序，0为主图"`
}

func (ProductImage) TableName() string {
	return "product_images"
}
