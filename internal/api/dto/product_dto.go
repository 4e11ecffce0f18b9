package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ColorReq 颜色变体参数
type ColorReq struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ImageReq 图片参数
type ImageReq struct {
	Url  string `json:"url"`
	Sort int    `json:"sort"`
}

// ProductCreateReq 创建商品请求
type ProductCreateReq struct {
	StoreID     int64           `json:"-"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Size        string          `json:"size"`
	CategoryID  int64           `json:"category_id"`
	ShippingID  int64           `json:"shipping_id"`
	IsFeatured  bool            `json:"is_featured"`
	IsArchived  bool            `json:"is_archived"`
	Colors      []ColorReq      `json:"colors"`
	Images      []ImageReq      `json:"images"`
}

// ProductUpdateReq 更新商品请求（整体提交，颜色与图片整体替换）
type ProductUpdateReq = ProductCreateReq

// ColorResp 颜色变体
type ColorResp struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ImageResp 图片
type ImageResp struct {
	ID   int64  `json:"id"`
	Url  string `json:"url"`
	Sort int    `json:"sort"`
}

// ProductResp 商品信息
type ProductResp struct {
	ID           int64           `json:"id"`
	StoreID      int64           `json:"store_id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Size         string          `json:"size"`
	CategoryID   int64           `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	ShippingID   int64           `json:"shipping_id"`
	ShippingName string          `json:"shipping_name,omitempty"`
	IsFeatured   bool            `json:"is_featured"`
	IsArchived   bool            `json:"is_archived"`
	Colors       []ColorResp     `json:"colors"`
	Images       []ImageResp     `json:"images"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductListResp 商品列表
type ProductListResp struct {
	Total int64         `json:"total"`
	List  []ProductResp `json:"list"`
}

// GenerateCopyReq AI 文案生成请求
type GenerateCopyReq struct {
	Keywords    string `json:"keywords"`
	Instruction string `json:"instruction"`
}

// GenerateCopyResp AI 文案生成结果
type GenerateCopyResp struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
