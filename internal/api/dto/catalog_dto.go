package dto

import "time"

// ==================== Size ====================

// SizeCreateReq 创建尺码请求
type SizeCreateReq struct {
	StoreID int64  `json:"-"`
	Name    string `json:"name"`
	Value   string `json:"value"`
	Sort    int    `json:"sort"`
}

// SizeUpdateReq 更新尺码请求
type SizeUpdateReq = SizeCreateReq

// SizeResp 尺码信息
type SizeResp struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	Sort      int       `json:"sort"`
	CreatedAt time.Time `json:"created_at"`
}

// SizeListResp 尺码列表
type SizeListResp struct {
	Total int64      `json:"total"`
	List  []SizeResp `json:"list"`
}

// ==================== Category ====================

// CategoryCreateReq 创建分类请求
type CategoryCreateReq struct {
	StoreID int64  `json:"-"`
	Name    string `json:"name"`
}

// CategoryUpdateReq 更新分类请求
type CategoryUpdateReq = CategoryCreateReq

// CategoryResp 分类信息
type CategoryResp struct {
	ID        int64     `json:"id"`
	StoreID   int64     `json:"store_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryListResp 分类列表
type CategoryListResp struct {
	Total int64          `json:"total"`
	List  []CategoryResp `json:"list"`
}

// ==================== Store ====================

// StoreCreateReq 创建店铺请求
type StoreCreateReq struct {
	UserID           int64    `json:"-"`
	Name             string   `json:"name"`
	CurrencyCode     string   `json:"currency_code"`
	AllowedCountries []string `json:"allowed_countries"`
}

// StoreResp 店铺信息
type StoreResp struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	CurrencyCode     string    `json:"currency_code"`
	AllowedCountries []string  `json:"allowed_countries"`
	CreatedAt        time.Time `json:"created_at"`
}
