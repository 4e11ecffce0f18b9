package model

import (
	"time"

	"gorm.io/datatypes"
)

// Order 订单
// 结账时只落一个骨架（isPaid=false），价格不做快照，读取时从商品表重算
// 买家电话/地址由支付回调补写
type Order struct {
	BaseModel

	StoreID int64  `gorm:"index;not null;comment:关联店铺ID"`
	Store   *Store `gorm:"foreignKey:StoreID"`

	IsPaid bool       `gorm:"default:false;index;comment:是否已支付"`
	PaidAt *time.Time `gorm:"comment:支付时间"`

	// 买家信息（回调后才有值）
	Phone   string `gorm:"size:50;comment:买家电话"`
	Address string `gorm:"size:512;comment:收货地址"`

	// 支付会话关联
	SessionID string `gorm:"size:255;index;comment:支付会话ID"`

	// 回调原始数据（排查用）
	SessionData datatypes.JSON `gorm:"comment:回调原始payload"`

	// 关联数据（一对多）
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单行，仅保存商品引用
type OrderItem struct {
	BaseModel

	OrderID int64  `gorm:"index;not null;comment:关联订单ID"`
	Order   *Order `gorm:"foreignKey:OrderID"`

	ProductID int64    `gorm:"index;not null;comment:关联商品ID"`
	Product   *Product `gorm:"foreignKey:ProductID"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
