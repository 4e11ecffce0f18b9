package service

import (
	"context"
	"fmt"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
)

// GalleryService 图库服务
// 图库一个店铺只有一张，提交永远是完整列表，整体替换
type GalleryService struct {
	galleryRepo repository.GalleryRepository
	storeSvc    *StoreService
}

// NewGalleryService 创建图库服务
func NewGalleryService(galleryRepo repository.GalleryRepository, storeSvc *StoreService) *GalleryService {
	return &GalleryService{galleryRepo: galleryRepo, storeSvc: storeSvc}
}

// Upsert 创建或整体替换图库图片
func (s *GalleryService) Upsert(ctx context.Context, userID int64, req dto.GalleryUpsertReq) (*dto.GalleryResp, error) {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return nil, err
	}
	for _, img := range req.Images {
		if img.Url == "" {
			return nil, fmt.Errorf("%w: 图片URL不能为空", ErrValidation)
		}
	}

	gallery, err := s.galleryRepo.GetByStoreID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	if gallery == nil {
		gallery = &model.Gallery{StoreID: req.StoreID}
		if err := s.galleryRepo.Create(ctx, gallery); err != nil {
			return nil, err
		}
	}

	images := make([]model.GalleryImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, model.GalleryImage{
			Url:  img.Url,
			Sort: img.Sort,
		})
	}
	if err := s.galleryRepo.ReplaceImages(ctx, gallery.ID, images); err != nil {
		return nil, err
	}

	// 替换完回读一次，带回数据库生成的 ID 和排序
	gallery, err = s.galleryRepo.GetByStoreID(ctx, req.StoreID)
	if err != nil {
		return nil, err
	}
	return s.toResp(gallery), nil
}

// GetByStore 取店铺图库，没有图库返回空列表而不是 404
func (s *GalleryService) GetByStore(ctx context.Context, storeID int64) (*dto.GalleryResp, error) {
	gallery, err := s.galleryRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if gallery == nil {
		return &dto.GalleryResp{StoreID: storeID, Images: []dto.ImageResp{}}, nil
	}
	return s.toResp(gallery), nil
}

func (s *GalleryService) toResp(gallery *model.Gallery) *dto.GalleryResp {
	images := make([]dto.ImageResp, 0, len(gallery.Images))
	for _, img := range gallery.Images {
		images = append(images, dto.ImageResp{
			ID:   img.ID,
			Url:  img.Url,
			Sort: img.Sort,
		})
	}
	return &dto.GalleryResp{
		ID:      gallery.ID,
		StoreID: gallery.StoreID,
		Images:  images,
	}
}
