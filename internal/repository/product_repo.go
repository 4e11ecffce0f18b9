package repository

import (
	"context"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/model"
)

// ProductFilter 商品列表过滤条件
type ProductFilter struct {
	CategoryID int64
	Featured   *bool
	Archived   *bool
}

// ProductRepository 商品仓储接口
type ProductRepository interface {
	// 基础 CRUD
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	GetByIDWithRelations(ctx context.Context, id int64) (*model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	ReplaceRelations(ctx context.Context, productID int64, colors []model.Color, images []model.ProductImage) error
	Delete(ctx context.Context, storeID int64, id int64) (int64, error)

	// 查询
	GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error)
	ListByStore(ctx context.Context, storeID int64, filter ProductFilter) ([]model.Product, error)
	CountByShipping(ctx context.Context, shippingID int64) (int64, error)
}

type productRepo struct {
	db *gorm.DB
}

// NewProductRepository 创建商品仓储
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{db: db}
}

// Create 创建商品，关联的颜色和图片走 gorm 关联写入，同一事务
func (r *productRepo) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepo) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) GetByIDWithRelations(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	err := r.db.WithContext(ctx).
		Preload("Colors", func(db *gorm.DB) *gorm.DB { return db.Order("colors.id ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("product_images.sort ASC, product_images.id ASC") }).
		Preload("Shipping").
		Preload("Category").
		First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepo) Update(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).
		Omit("Colors", "Images").
		Save(product).Error
}

// ReplaceRelations 整体替换商品的颜色与图片（表单提交的是完整列表）
func (r *productRepo) ReplaceRelations(ctx context.Context, productID int64, colors []model.Color, images []model.ProductImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("product_id = ?", productID).Delete(&model.Color{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("product_id = ?", productID).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		for i := range colors {
			colors[i].ID = 0
			colors[i].ProductID = productID
		}
		for i := range images {
			images[i].ID = 0
			images[i].ProductID = productID
		}
		if len(colors) > 0 {
			if err := tx.Create(&colors).Error; err != nil {
				return err
			}
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete 按店铺限定删除，返回受影响行数（0 行由上层转 404）
func (r *productRepo) Delete(ctx context.Context, storeID int64, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.Product{}, id)
	return result.RowsAffected, result.Error
}

// GetByIDs 按 ID 集合查询，带结账需要的全部关联
func (r *productRepo) GetByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	var list []model.Product
	err := r.db.WithContext(ctx).
		Preload("Colors", func(db *gorm.DB) *gorm.DB { return db.Order("colors.id ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("product_images.sort ASC, product_images.id ASC") }).
		Preload("Shipping").
		Where("id IN ?", ids).
		Find(&list).Error
	return list, err
}

func (r *productRepo) ListByStore(ctx context.Context, storeID int64, filter ProductFilter) ([]model.Product, error) {
	query := r.db.WithContext(ctx).
		Preload("Colors", func(db *gorm.DB) *gorm.DB { return db.Order("colors.id ASC") }).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("product_images.sort ASC, product_images.id ASC") }).
		Preload("Shipping").
		Preload("Category").
		Where("store_id = ?", storeID)

	if filter.CategoryID > 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}
	if filter.Archived != nil {
		query = query.Where("is_archived = ?", *filter.Archived)
	}

	var list []model.Product
	err := query.Order("id DESC").Find(&list).Error
	return list, err
}

// CountByShipping 统计引用某运费方式的商品数（删除前的引用完整性检查）
func (r *productRepo) CountByShipping(ctx context.Context, shippingID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("shipping_id = ?", shippingID).
		Count(&count).Error
	return count, err
}
