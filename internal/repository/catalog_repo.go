package repository

import (
	"context"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/model"
)

// ==================== Size 接口定义 ====================

// SizeRepository 尺码仓储接口
type SizeRepository interface {
	Create(ctx context.Context, size *model.Size) error
	GetByID(ctx context.Context, id int64) (*model.Size, error)
	UpdateFields(ctx context.Context, storeID int64, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, storeID int64, id int64) (int64, error)

	GetByStoreID(ctx context.Context, storeID int64) ([]model.Size, error)
}

type sizeRepo struct {
	db *gorm.DB
}

// NewSizeRepository 创建尺码仓储
func NewSizeRepository(db *gorm.DB) SizeRepository {
	return &sizeRepo{db: db}
}

func (r *sizeRepo) Create(ctx context.Context, size *model.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *sizeRepo) GetByID(ctx context.Context, id int64) (*model.Size, error) {
	var size model.Size
	err := r.db.WithContext(ctx).First(&size, id).Error
	if err != nil {
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepo) UpdateFields(ctx context.Context, storeID int64, id int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Size{}).
		Where("id = ? AND store_id = ?", id, storeID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *sizeRepo) Delete(ctx context.Context, storeID int64, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.Size{}, id)
	return result.RowsAffected, result.Error
}

func (r *sizeRepo) GetByStoreID(ctx context.Context, storeID int64) ([]model.Size, error) {
	var list []model.Size
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("sort ASC, id ASC").
		Find(&list).Error
	return list, err
}

// ==================== Category 接口定义 ====================

// CategoryRepository 分类仓储接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.Category) error
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	UpdateFields(ctx context.Context, storeID int64, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, storeID int64, id int64) (int64, error)

	GetByStoreID(ctx context.Context, storeID int64) ([]model.Category, error)
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓储
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).First(&category, id).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) UpdateFields(ctx context.Context, storeID int64, id int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Category{}).
		Where("id = ? AND store_id = ?", id, storeID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *categoryRepo) Delete(ctx context.Context, storeID int64, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.Category{}, id)
	return result.RowsAffected, result.Error
}

func (r *categoryRepo) GetByStoreID(ctx context.Context, storeID int64) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}
