package model

// Size 尺码选项（店铺级字典，商品表直接存展示标签）
type Size struct {
	BaseModel

	StoreID int64  `gorm:"index;not null;comment:关联店铺ID"`
	Store   *Store `gorm:"foreignKey:StoreID"`

	Name  string `gorm:"size:100;not null;comment:尺码名称"`
	Value string `gorm:"size:100;comment:尺码值"`
	Sort  int    `gorm:"default:0;comment:排序"`
}

func (Size) TableName() string {
	return "sizes"
}

// Category 商品分类
type Category struct {
	BaseModel

	StoreID int64  `gorm:"index;not null;comment:关联店铺ID"`
	Store   *Store `gorm:"foreignKey:StoreID"`

	Name string `gorm:"size:100;not null;comment:分类名称"`
}

func (Category) TableName() string {
	return "categories"
}
