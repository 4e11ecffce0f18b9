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

// ProductService 商品服务
type ProductService struct {
	productRepo  repository.ProductRepository
	shippingRepo repository.ShippingRepository
	storeSvc     *StoreService
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository, shippingRepo repository.ShippingRepository, storeSvc *StoreService) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		shippingRepo: shippingRepo,
		storeSvc:     storeSvc,
	}
}

// validateReq 创建/更新共用的校验
func (s *ProductService) validateReq(ctx context.Context, req dto.ProductCreateReq) error {
	if req.Name == "" {
		return fmt.Errorf("%w: 商品名称不能为空", ErrValidation)
	}
	if req.Price.IsNegative() {
		return fmt.Errorf("%w: 价格不能为负", ErrValidation)
	}
	if req.ShippingID <= 0 {
		return fmt.Errorf("%w: 必须指定运费方式", ErrValidation)
	}

	// 运费方式必须存在且属于同一店铺
	shipping, err := s.shippingRepo.GetByID(ctx, req.ShippingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 运费方式不存在", ErrValidation)
		}
		return err
	}
	if shipping.StoreID != req.StoreID {
		return fmt.Errorf("%w: 运费方式不属于该店铺", ErrValidation)
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, userID int64, req dto.ProductCreateReq) (*dto.ProductResp, error) {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return nil, err
	}
	if err := s.validateReq(ctx, req); err != nil {
		return nil, err
	}

	product := &model.Product{
		StoreID:     req.StoreID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Size:        req.Size,
		CategoryID:  req.CategoryID,
		ShippingID:  req.ShippingID,
		IsFeatured:  req.IsFeatured,
		IsArchived:  req.IsArchived,
	}
	for _, c := range req.Colors {
		product.Colors = append(product.Colors, model.Color{Name: c.Name, Value: c.Value})
	}
	for _, img := range req.Images {
		product.Images = append(product.Images, model.ProductImage{Url: img.Url, Sort: img.Sort})
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return s.GetDetail(ctx, product.ID)
}

// Update 更新商品，颜色和图片是整体替换
func (s *ProductService) Update(ctx context.Context, userID int64, id int64, req dto.ProductUpdateReq) error {
	if err := s.storeSvc.CheckOwnership(ctx, req.StoreID, userID); err != nil {
		return err
	}
	if err := s.validateReq(ctx, req); err != nil {
		return err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: 商品不存在", ErrNotFound)
		}
		return err
	}
	if product.StoreID != req.StoreID {
		return fmt.Errorf("%w: 商品不存在", ErrNotFound)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.Size = req.Size
	product.CategoryID = req.CategoryID
	product.ShippingID = req.ShippingID
	product.IsFeatured = req.IsFeatured
	product.IsArchived = req.IsArchived
	if err := s.productRepo.Update(ctx, product); err != nil {
		return err
	}

	colors := make([]model.Color, 0, len(req.Colors))
	for _, c := range req.Colors {
		colors = append(colors, model.Color{Name: c.Name, Value: c.Value})
	}
	images := make([]model.ProductImage, 0, len(req.Images))
	for _, img := range req.Images {
		images = append(images, model.ProductImage{Url: img.Url, Sort: img.Sort})
	}
	return s.productRepo.ReplaceRelations(ctx, id, colors, images)
}

func (s *ProductService) Delete(ctx context.Context, userID int64, storeID int64, id int64) error {
	if err := s.storeSvc.CheckOwnership(ctx, storeID, userID); err != nil {
		return err
	}

	rows, err := s.productRepo.Delete(ctx, storeID, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("%w: 商品不存在", ErrNotFound)
	}
	return nil
}

func (s *ProductService) GetDetail(ctx context.Context, id int64) (*dto.ProductResp, error) {
	product, err := s.productRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: 商品不存在", ErrNotFound)
		}
		return nil, err
	}
	resp := s.toResp(product)
	return &resp, nil
}

func (s *ProductService) GetList(ctx context.Context, storeID int64, filter repository.ProductFilter) (*dto.ProductListResp, error) {
	list, err := s.productRepo.ListByStore(ctx, storeID, filter)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.ProductResp, 0, len(list))
	for i := range list {
		respList = append(respList, s.toResp(&list[i]))
	}
	return &dto.ProductListResp{
		Total: int64(len(respList)),
		List:  respList,
	}, nil
}

func (s *ProductService) toResp(product *model.Product) dto.ProductResp {
	resp := dto.ProductResp{
		ID:          product.ID,
		StoreID:     product.StoreID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Size:        product.Size,
		CategoryID:  product.CategoryID,
		ShippingID:  product.ShippingID,
		IsFeatured:  product.IsFeatured,
		IsArchived:  product.IsArchived,
		Colors:      make([]dto.ColorResp, 0, len(product.Colors)),
		Images:      make([]dto.ImageResp, 0, len(product.Images)),
		CreatedAt:   product.CreatedAt,
	}
	if product.Category != nil {
		resp.CategoryName = product.Category.Name
	}
	if product.Shipping != nil {
		resp.ShippingName = product.Shipping.Name
	}
	for _, c := range product.Colors {
		resp.Colors = append(resp.Colors, dto.ColorResp{ID: c.ID, Name: c.Name, Value: c.Value})
	}
	for _, img := range product.Images {
		resp.Images = append(resp.Images, dto.ImageResp{ID: img.ID, Url: img.Url, Sort: img.Sort})
	}
	return resp
}
