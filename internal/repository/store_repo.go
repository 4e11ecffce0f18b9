package repository

import (
	"context"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/model"
)

// StoreRepository 店铺仓储接口
type StoreRepository interface {
	Create(ctx context.Context, store *model.Store) error
	GetByID(ctx context.Context, id int64) (*model.Store, error)
	Update(ctx context.Context, store *model.Store) error
	Delete(ctx context.Context, id int64) error

	ListByUser(ctx context.Context, userID int64) ([]model.Store, error)
	// ExistsForUser 店铺归属校验（授权检查用，只查行数不取整行）
	ExistsForUser(ctx context.Context, id int64, userID int64) (bool, error)
}

type storeRepo struct {
	db *gorm.DB
}

// NewStoreRepository 创建店铺仓储
func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) Create(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Create(store).Error
}

func (r *storeRepo) GetByID(ctx context.Context, id int64) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepo) Update(ctx context.Context, store *model.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

func (r *storeRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&model.Store{}, id).Error
}

func (r *storeRepo) ListByUser(ctx context.Context, userID int64) ([]model.Store, error) {
	var list []model.Store
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}

func (r *storeRepo) ExistsForUser(ctx context.Context, id int64, userID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Store{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	return count > 0, err
}
