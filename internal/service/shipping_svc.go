package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
)

// ShippingService 运费方式服务
type ShippingService struct {
	shippingRepo repository.ShippingRepository
	productRepo  repository.ProductRepository
	storeSvc     *StoreService
}

// NewShippingService 创建运费方式服务
func NewShippingService(
	shippingRepo repository.ShippingRepository,
	productRepo repository.ProductRepository,
	storeSvc *StoreService,
) *ShippingService {
	return &ShippingService{
		shippingRepo: shippingRepo,
		productRepo:  productRepo,
		storeSvc:     storeSvc,
	}
}

// validateReq 字段校验：固定运费必须有价格，按实际计价必须四个尺寸重量齐全
func (s *ShippingService) validateReq(req dto.ShippingCreateReq) error {
	if req.Name == "" {
		return fmt.Errorf("%w: 名称不能为空", ErrValidation)
	}
	if req.IsFixed {
		if !req.Price.IsPositive() {
			return fmt.Errorf("%w: 固定运费必须填写价格", ErrValidation)
		}
		return nil
	}
	if !req.Width.IsPositive() || !req.Height.IsPositive() || !req.Length.IsPositive() || !req.Weight.IsPositive() {
		return fmt.Errorf("%w: 按实际计价需要填写长宽高和重量", ErrValidation)
	}
	return nil
}

// Create 创建运费方式，非生效侧字段写零值
func (s *ShippingService) Create(ctx context.Context, userID int64, req dto.ShippingCreateReq) (*dto.ShippingResp, error) {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return nil, err
	}
	if err := s.validateReq(req); err != nil {
		return nil, err
	}

	shipping := &model.Shipping{
		StoreID: req.StoreID,
		Name:    req.Name,
		IsFixed: req.IsFixed,
	}
	if req.IsFixed {
		shipping.Price = req.Price
	} else {
		shipping.Width = req.Width
		shipping.Height = req.Height
		shipping.Length = req.Length
		shipping.Weight = req.Weight
	}

	if err := s.shippingRepo.Create(ctx, shipping); err != nil {
		return nil, err
	}

	resp := s.toResp(shipping)
	return &resp, nil
}

// Update 更新运费方式，0 行受影响按 404 处理
func (s *ShippingService) Update(ctx context.Context, userID int64, id int64, req dto.ShippingUpdateReq) error {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return err
	}
	if err := s.validateReq(req); err != nil {
		return err
	}

	fields := map[string]interface{}{
		"name":     req.Name,
		"is_fixed": req.IsFixed,
		"price":    decimal.Zero,
		"width":    decimal.Zero,
		"height":   decimal.Zero,
		"length":   decimal.Zero,
		"weight":   decimal.Zero,
	}
	if req.IsFixed {
		fields["price"] = req.Price
	} else {
		fields["width"] = req.Width
		fields["height"] = req.Height
		fields["length"] = req.Length
		fields["weight"] = req.Weight
	}

	rows, err := s.shippingRepo.UpdateFields(ctx, req.StoreID, id, fields)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 运费方式不存在", ErrNotFound)
	}
	return nil
}

// Delete 删除运费方式，被商品引用时拒绝
func (s *ShippingService) Delete(ctx context.Context, userID int64, storeID int64, id int64) error {
	if err := s.storeSvc.CheckOwnership(ctx, storeID, userID); err != nil {
		return err
	}

	count, err := s.productRepo.CountByShipping(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: 仍有 %d 个商品引用该运费方式", ErrConflict, count)
	}

	rows, err := s.shippingRepo.Delete(ctx, storeID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 运费方式不存在", ErrNotFound)
	}
	return nil
}

// GetDetail 获取运费方式详情
func (s *ShippingService) GetDetail(ctx context.Context, id int64) (*dto.ShippingResp, error) {
	shipping, err := s.shippingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 运费方式不存在", ErrNotFound)
		}
		return nil, err
	}
	resp := s.toResp(shipping)
	return &resp, nil
}

// GetList 获取店铺运费方式列表
func (s *ShippingService) GetList(ctx context.Context, storeID int64) (*dto.ShippingListResp, error) {
	list, err := s.shippingRepo.GetByStoreID(ctx, storeID)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.ShippingResp, 0, len(list))
	for _, shipping := range list {
		respList = append(respList, s.toResp(&shipping))
	}
	return &dto.ShippingListResp{
		Total: int64(len(respList)),
		List:  respList,
	}, nil
}

func (s *ShippingService) toResp(shipping *model.Shipping) dto.ShippingResp {
	return dto.ShippingResp{
		ID:        shipping.ID,
		StoreID:   shipping.StoreID,
		Name:      shipping.Name,
		IsFixed:   shipping.IsFixed,
		Price:     shipping.Price,
		Width:     shipping.Width,
		Height:    shipping.Height,
		Length:    shipping.Length,
		Weight:    shipping.Weight,
		CreatedAt: shipping.CreatedAt,
	}
}
