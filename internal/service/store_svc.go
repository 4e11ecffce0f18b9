package service

import (
	"context"
	"fmt"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
)

// StoreService 店铺服务
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService 创建店铺服务
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// CheckOwnership 店铺归属校验，所有后台写操作的前置检查
func (s *StoreService) CheckOwnership(ctx context.Context, storeID int64, userID int64) error {
	ok, err := s.storeRepo.ExistsForUser(ctx, storeID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrForbidden
	}
	return nil
}

// Create 创建店铺
func (s *StoreService) Create(ctx context.Context, req dto.StoreCreateReq) (*dto.StoreResp, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: 店铺名称不能为空", ErrValidation)
	}

	store := &model.Store{
		Name:             req.Name,
		UserID:           req.UserID,
		CurrencyCode:     req.CurrencyCode,
		AllowedCountries: req.AllowedCountries,
	}
	if store.CurrencyCode == "" {
		store.CurrencyCode = "CAD"
	}

	if err := s.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	resp := s.toResp(store)
	return &resp, nil
}

// ListByUser 当前用户的店铺列表
func (s *StoreService) ListByUser(ctx context.Context, userID int64) ([]dto.StoreResp, error) {
	list, err := s.storeRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.StoreResp, 0, len(list))
	for _, store := range list {
		respList = append(respList, s.toResp(&store))
	}
	return respList, nil
}

func (s *StoreService) toResp(store *model.Store) dto.StoreResp {
	return dto.StoreResp{
		ID:               store.ID,
		Name:             store.Name,
		CurrencyCode:     store.CurrencyCode,
		AllowedCountries: store.AllowedCountries,
		CreatedAt:        store.CreatedAt,
	}
}
