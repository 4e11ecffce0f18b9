package dto

// GalleryImageReq 图库图片参数
type GalleryImageReq struct {
	Url  string `json:"url"`
	Sort int    `json:"sort"`
}

// GalleryUpsertReq 创建/更新图库请求（提交的是完整图片列表，整体替换）
type GalleryUpsertReq struct {
	StoreID int64             `json:"-"`
	Images  []GalleryImageReq `json:"images"`
}

// GalleryResp 图库信息
type GalleryResp struct {
	ID      int64       `json:"id"`
	StoreID int64       `json:"store_id"`
	Images  []ImageResp `json:"images"`
}
