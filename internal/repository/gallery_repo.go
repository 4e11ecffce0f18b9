package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/model"
)

// GalleryRepository 图库仓储接口
type GalleryRepository interface {
	Create(ctx context.Context, gallery *model.Gallery) error
	GetByStoreID(ctx context.Context, storeID int64) (*model.Gallery, error)
	// ReplaceImages 整体替换图库图片，删除和重建在同一事务内完成
	ReplaceImages(ctx context.Context, galleryID int64, images []model.GalleryImage) error
}

type galleryRepo struct {
	db *gorm.DB
}

// NewGalleryRepository 创建图库仓储
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepo{db: db}
}

func (r *galleryRepo) Create(ctx context.Context, gallery *model.Gallery) error {
	return r.db.WithContext(ctx).Create(gallery).Error
}

// GetByStoreID 取店铺图库（含图片，按 sort 排序），未找到返回 nil
func (r *galleryRepo) GetByStoreID(ctx context.Context, storeID int64) (*model.Gallery, error) {
	var gallery model.Gallery
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("gallery_images.sort ASC, gallery_images.id ASC") }).
		Where("store_id = ?", storeID).
		First(&gallery).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &gallery, nil
}

func (r *galleryRepo) ReplaceImages(ctx context.Context, galleryID int64, images []model.GalleryImage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("gallery_id = ?", galleryID).Delete(&model.GalleryImage{}).Error; err != nil {
			return err
		}
		for i := range images {
			images[i].ID = 0
			images[i].GalleryID = galleryID
		}
		if len(images) > 0 {
			if err := tx.Create(&images).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
