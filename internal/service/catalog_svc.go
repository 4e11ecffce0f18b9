package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
)

// ==================== SizeService ====================

// SizeService 尺码服务
type SizeService struct {
	sizeRepo repository.SizeRepository
	storeSvc *StoreService
}

// NewSizeService 创建尺码服务
func NewSizeService(sizeRepo repository.SizeRepository, storeSvc *StoreService) *SizeService {
	return &SizeService{sizeRepo: sizeRepo, storeSvc: storeSvc}
}

func (s *SizeService) Create(ctx context.Context, userID int64, req dto.SizeCreateReq) (*dto.SizeResp, error) {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: 名称不能为空", ErrValidation)
	}

	size := &model.Size{
		StoreID: req.StoreID,
		Name:    req.Name,
		Value:   req.Value,
		Sort:    req.Sort,
	}
	if err := s.sizeRepo.Create(ctx, size); err != nil {
		return nil, err
	}

	resp := s.toSizeResp(size)
	return &resp, nil
}

func (s *SizeService) Update(ctx context.Context, userID int64, id int64, req dto.SizeUpdateReq) error {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return err
	}
	if req.Name == "" {
		return fmt.Errorf("%w: 名称不能为空", ErrValidation)
	}

	rows, err := s.sizeRepo.UpdateFields(ctx, req.StoreID, id, map[string]interface{}{
		"name":  req.Name,
		"value": req.Value,
		"sort":  req.Sort,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 尺码不存在", ErrNotFound)
	}
	return nil
}

func (s *SizeService) Delete(ctx context.Context, userID int64, storeID int64, id int64) error {
	if err := s.storeSvc.CheckOwnership(ctx, storeID, userID); err != nil {
		return err
	}

	rows, err := s.sizeRepo.Delete(ctx, storeID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 尺码不存在", ErrNotFound)
	}
	return nil
}

func (s *SizeService) GetDetail(ctx context.Context, id int64) (*dto.SizeResp, error) {
	size, err := s.sizeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 尺码不存在", ErrNotFound)
		}
		return nil, err
	}
	resp := s.toSizeResp(size)
	return &resp, nil
}

func (s *SizeService) GetList(ctx context.Context, storeID int64) (*dto.SizeListResp, error) {
	list, err := s.sizeRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.SizeResp, 0, len(list))
	for _, size := range list {
		respList = append(respList, s.toSizeResp(&size))
	}
	return &dto.SizeListResp{
		Total: int64(len(respList)),
		List:  respList,
	}, nil
}

func (s *SizeService) toSizeResp(size *model.Size) dto.SizeResp {
	return dto.SizeResp{
		ID:        size.ID,
		StoreID:   size.StoreID,
		Name:      size.Name,
		Value:     size.Value,
		Sort:      size.Sort,
		CreatedAt: size.CreatedAt,
	}
}

// ==================== CategoryService ====================

// CategoryService 分类服务
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	storeSvc     *StoreService
}

// NewCategoryService 创建分类服务
func NewCategoryService(categoryRepo repository.CategoryRepository, storeSvc *StoreService) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo, storeSvc: storeSvc}
}

func (s *CategoryService) Create(ctx context.Context, userID int64, req dto.CategoryCreateReq) (*dto.CategoryResp, error) {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, fmt.Errorf("%w: 名称不能为空", ErrValidation)
	}

	category := &model.Category{
		StoreID: req.StoreID,
		Name:    req.Name,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := s.toCategoryResp(category)
	return &resp, nil
}

func (s *CategoryService) Update(ctx context.Context, userID int64, id int64, req dto.CategoryUpdateReq) error {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return err
	}
	if req.Name == "" {
		return fmt.Errorf("%w: 名称不能为空", ErrValidation)
	}

	rows, err := s.categoryRepo.UpdateFields(ctx, req.StoreID, id, map[string]interface{}{
		"name": req.Name,
	})
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 分类不存在", ErrNotFound)
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, userID int64, storeID int64, id int64) error {
	if err := s.storeSvc.CheckOwnership(ctx, storeID, userID); err != nil {
		return err
	}

	rows, err := s.categoryRepo.Delete(ctx, storeID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 分类不存在", ErrNotFound)
	}
	return nil
}

func (s *CategoryService) GetList(ctx context.Context, storeID int64) (*dto.CategoryListResp, error) {
	list, err := s.categoryRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.CategoryResp, 0, len(list))
	for _, category := range list {
		respList = append(respList, s.toCategoryResp(&category))
	}
	return &dto.CategoryListResp{
		Total: int64(len(respList)),
		List:  respList,
	}, nil
}

func (s *CategoryService) toCategoryResp(category *model.Category) dto.CategoryResp {
	return dto.CategoryResp{
		ID:        category.ID,
		StoreID:   category.StoreID,
		Name:      category.Name,
		CreatedAt: category.CreatedAt,
	}
}
