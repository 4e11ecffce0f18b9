package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
)

// 店铺没配置时的兜底
var defaultAllowedCountries = []string{"US", "CA"}

const defaultCurrency = "CAD"

// 配送时效（自然日换算成工作日区间）
const (
	pickupMinDays   = 1
	pickupMaxDays   = 1
	shippingMinDays = 4
	shippingMaxDays = 14
)

// CheckoutConfig 结账服务配置
type CheckoutConfig struct {
	// FrontendURL 商城前台地址，支付完成后跳回
	FrontendURL string
}

// CheckoutQuote 报价结果：提交给支付网关前的全部计价明细
type CheckoutQuote struct {
	Currency         string
	AllowedCountries []string
	LineItems        []PaymentLineItem
	ShippingOptions  []PaymentShippingOption
	// ProductIDs 与请求同序，落订单行用
	ProductIDs []int64
}

// CheckoutService 结账服务
// 流程：报价 -> 落订单骨架 -> 创建支付会话 -> 回填会话ID
type CheckoutService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	storeRepo   repository.StoreRepository
	payment     PaymentProvider
	config      CheckoutConfig
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	storeRepo repository.StoreRepository,
	payment PaymentProvider,
	config CheckoutConfig,
) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		storeRepo:   storeRepo,
		payment:     payment,
		config:      config,
	}
}

// BuildQuote 按请求顺序逐件报价
// 每件商品出一条商品行；运费按去重后的商品各计一次，汇总成一个邮寄选项
func (s *CheckoutService) BuildQuote(ctx context.Context, storeID int64, req dto.CheckoutReq) (*CheckoutQuote, error) {
	if len(req.ProductIDs) == 0 {
		return nil, fmt.Errorf("%w: 商品列表不能为空", ErrValidation)
	}
	if len(req.VariantIndexes) != len(req.ProductIDs) {
		return nil, fmt.Errorf("%w: variantIndexes 必须与 productIds 等长", ErrValidation)
	}

	products, err := s.productRepo.GetByIDs(ctx, req.ProductIDs)
	if err != nil {
		return nil, err
	}
	productMap := make(map[int64]*model.Product, len(products))
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}

	quote := &CheckoutQuote{
		Currency:         defaultCurrency,
		AllowedCountries: defaultAllowedCountries,
		ProductIDs:       req.ProductIDs,
	}
	if store, err := s.storeRepo.GetByID(ctx, storeID); err == nil {
		if store.CurrencyCode != "" {
			quote.Currency = store.CurrencyCode
		}
		if len(store.AllowedCountries) > 0 {
			quote.AllowedCountries = store.AllowedCountries
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var shippingTotal int64
	chargedShipping := make(map[int64]bool) // 同一商品重复加购只收一次运费

	for i, productID := range req.ProductIDs {
		product, ok := productMap[productID]
		if !ok {
			return nil, fmt.Errorf("%w: 商品 %d 不存在", ErrNotFound, productID)
		}
		if product.StoreID != storeID {
			return nil, fmt.Errorf("%w: 商品 %d 不存在", ErrNotFound, productID)
		}

		variantIndex := req.VariantIndexes[i]
		if variantIndex < 0 || variantIndex >= len(product.Colors) {
			return nil, fmt.Errorf("%w: 商品 %d 的变体下标 %d 越界", ErrValidation, productID, variantIndex)
		}
		if len(product.Images) == 0 {
			return nil, fmt.Errorf("%w: 商品 %d 没有图片", ErrValidation, productID)
		}
		color := product.Colors[variantIndex]

		quote.LineItems = append(quote.LineItems, PaymentLineItem{
			Name:        product.Name,
			Description: fmt.Sprintf("Color (%s) and Size (%s)", color.Name, product.Size),
			ImageURL:    product.Images[0].Url,
			UnitAmount:  product.Price.Shift(2).Round(0).IntPart(),
			Quantity:    1,
		})

		if !chargedShipping[productID] {
			chargedShipping[productID] = true
			if product.Shipping == nil {
				return nil, fmt.Errorf("%w: 商品 %d 未配置运费方式", ErrValidation, productID)
			}
			if !product.Shipping.IsFixed {
				return nil, fmt.Errorf("%w: 商品 %d 的运费方式不是固定运费，暂不支持在线结账", ErrValidation, productID)
			}
			shippingTotal += product.Shipping.Price.Shift(2).Round(0).IntPart()
		}
	}

	quote.ShippingOptions = []PaymentShippingOption{
		{DisplayName: "Local Pickup", Amount: 0, MinDays: pickupMinDays, MaxDays: pickupMaxDays},
		{DisplayName: "Standard Shipping", Amount: shippingTotal, MinDays: shippingMinDays, MaxDays: shippingMaxDays},
	}
	return quote, nil
}

// Checkout 执行结账：报价成功后才会落任何数据
// 订单骨架先入库（单事务），支付会话创建失败时骨架留给定时任务清理
func (s *CheckoutService) Checkout(ctx context.Context, storeID int64, req dto.CheckoutReq) (*dto.CheckoutResp, error) {
	quote, err := s.BuildQuote(ctx, storeID, req)
	if err != nil {
		return nil, err
	}

	order := &model.Order{StoreID: storeID, IsPaid: false}
	if err := s.orderRepo.CreateWithItems(ctx, order, quote.ProductIDs); err != nil {
		return nil, err
	}

	session, err := s.payment.CreateSession(ctx, PaymentSessionReq{
		Currency:         quote.Currency,
		LineItems:        quote.LineItems,
		ShippingOptions:  quote.ShippingOptions,
		AllowedCountries: quote.AllowedCountries,
		SuccessURL:       s.config.FrontendURL + "/cart?success=1",
		CancelURL:        s.config.FrontendURL + "/cart?canceled=1",
		Metadata: map[string]string{
			"orderId": strconv.FormatInt(order.ID, 10),
		},
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.UpdateSessionID(ctx, order.ID, session.ID); err != nil {
		return nil, err
	}
	return &dto.CheckoutResp{Url: session.URL}, nil
}
