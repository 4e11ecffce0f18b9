package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingCreateReq 创建运费方式请求
// 固定运费只看 Price；按实际计价需要四个尺寸重量字段齐全
type ShippingCreateReq struct {
	StoreID int64           `json:"-"`
	Name    string          `json:"name"`
	IsFixed bool            `json:"is_fixed"`
	Price   decimal.Decimal `json:"price"`
	Width   decimal.Decimal `json:"width"`
	Height  decimal.Decimal `json:"height"`
	Length  decimal.Decimal `json:"length"`
	Weight  decimal.Decimal `json:"weight"`
}

// ShippingUpdateReq 更新运费方式请求
type ShippingUpdateReq = ShippingCreateReq

// ShippingResp 运费方式信息
type ShippingResp struct {
	ID        int64           `json:"id"`
	StoreID   int64           `json:"store_id"`
	Name      string          `json:"name"`
	IsFixed   bool            `json:"is_fixed"`
	Price     decimal.Decimal `json:"price"`
	Width     decimal.Decimal `json:"width"`
	Height    decimal.Decimal `json:"height"`
	Length    decimal.Decimal `json:"length"`
	Weight    decimal.Decimal `json:"weight"`
	CreatedAt time.Time       `json:"created_at"`
}

// ShippingListResp 运费方式列表
type ShippingListResp struct {
	Total int64          `json:"total"`
	List  []ShippingResp `json:"list"`
}
