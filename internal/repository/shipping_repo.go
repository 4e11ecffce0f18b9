package repository

import (
	"context"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/model"
)

// ShippingRepository 运费方式仓储接口
type ShippingRepository interface {
	Create(ctx context.Context, shipping *model.Shipping) error
	GetByID(ctx context.Context, id int64) (*model.Shipping, error)
	Update(ctx context.Context, shipping *model.Shipping) error
	UpdateFields(ctx context.Context, storeID int64, id int64, fields map[string]interface{}) (int64, error)
	Delete(ctx context.Context, storeID int64, id int64) (int64, error)

	GetByStoreID(ctx context.Context, storeID int64) ([]model.Shipping, error)
}

type shippingRepo struct {
	db *gorm.DB
}

// NewShippingRepository 创建运费方式仓储
func NewShippingRepository(db *gorm.DB) ShippingRepository {
	return &shippingRepo{db: db}
}

func (r *shippingRepo) Create(ctx context.Context, shipping *model.Shipping) error {
	return r.db.WithContext(ctx).Create(shipping).Error
}

func (r *shippingRepo) GetByID(ctx context.Context, id int64) (*model.Shipping, error) {
	var shipping model.Shipping
	err := r.db.WithContext(ctx).First(&shipping, id).Error
	if err != nil {
		return nil, err
	}
	return &shipping, nil
}

func (r *shippingRepo) Update(ctx context.Context, shipping *model.Shipping) error {
	return r.db.WithContext(ctx).Save(shipping).Error
}

// UpdateFields 按店铺限定更新，返回受影响行数（0 行由上层转 404，不再静默成功）
func (r *shippingRepo) UpdateFields(ctx context.Context, storeID int64, id int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Shipping{}).
		Where("id = ? AND store_id = ?", id, storeID).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *shippingRepo) Delete(ctx context.Context, storeID int64, id int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Delete(&model.Shipping{}, id)
	return result.RowsAffected, result.Error
}

func (r *shippingRepo) GetByStoreID(ctx context.Context, storeID int64) ([]model.Shipping, error) {
	var list []model.Shipping
	err := r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}
