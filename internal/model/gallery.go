package model

// Gallery 店铺图库（一个店铺一个图库，更新为整体替换语义）
type Gallery struct {
	BaseModel

	StoreID int64  `gorm:"index;not null;comment:关联店铺ID"`
	Store   *Store `gorm:"foreignKey:StoreID"`

	Images []GalleryImage `gorm:"foreignKey:GalleryID;constraint:OnDelete:CASCADE"`
}

func (Gallery) TableName() string {
	return "galleries"
}

// GalleryImage 图库图片
type GalleryImage struct {
	BaseModel

	GalleryID int64    `gorm:"index;not null;comment:关联图库ID"`
	Gallery   *Gallery `gorm:"foreignKey:GalleryID"`

	Url  string `gorm:"size:512;not null;comment:图片URL"`
	Sort int    `gorm:"default:0;comment:排序"`
}

func (GalleryImage) TableName() string {
	return "gallery_images"
}
