package model

import "github.com/shopspring/decimal"

// Shipping 运费方式模型
// isFixed = true 时 Price 生效；false 时按体积重量在结账时计价（见 checkout_svc）
// 非生效侧字段写零值，不写 NULL
type Shipping struct {
	BaseModel

	// 关联店铺
	StoreID int64  `gorm:"index;not null;comment:关联店铺ID"`
	Store   *Store `gorm:"foreignKey:StoreID"`

	Name    string `gorm:"size:255;not null;comment:运费方式名称"`
	IsFixed bool   `gorm:"default:true;comment:是否固定运费"`

	// 固定运费
	Price decimal.Decimal `gorm:"type:decimal(12,2);comment:固定运费"`

	// 体积重量（按实际计价时使用）
	Width  decimal.Decimal `gorm:"type:decimal(12,2);comment:宽(cm)"`
	Height decimal.Decimal `gorm:"type:decimal(12,2);comment:高(cm)"`
	Length decimal.Decimal `gorm:"type:decimal(12,2);comment:长(cm)"`
	Weight decimal.Decimal `gorm:"type:decimal(12,2);comment:重量(kg)"`
}

func (Shipping) TableName() string {
	return "shippings"
}
