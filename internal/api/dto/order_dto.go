package dto

import "time"

// OrderResp 订单信息
// 金额不落库，读取时按当前商品价重算
type OrderResp struct {
	ID         int64     `json:"id"`
	StoreID    int64     `json:"store_id"`
	Products   string    `json:"products"` // 商品名拼接，后台表格展示用
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	TotalPrice string    `json:"total_price"`
	IsPaid     bool      `json:"is_paid"`
	CreatedAt  time.Time `json:"created_at"`
}

// OrderListResp 订单列表
type OrderListResp struct {
	Total int64       `json:"total"`
	List  []OrderResp `json:"list"`
}
