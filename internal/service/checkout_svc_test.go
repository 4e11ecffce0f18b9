package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
)

func newCheckoutTestService(t *testing.T, db *gorm.DB, payment PaymentProvider) *CheckoutService {
	return NewCheckoutService(
		repository.NewProductRepository(db),
		repository.NewOrderRepository(db),
		repository.NewStoreRepository(db),
		payment,
		CheckoutConfig{FrontendURL: "https://store.example.com"},
	)
}

// ==================== BuildQuote 测试 ====================

func TestCheckoutService_BuildQuote(t *testing.T) {
	db := setupServiceTestDB(t)
	payment := &fakePayment{}
	svc := newCheckoutTestService(t, db, payment)

	p1 := seedProduct(t, db, 1, "Poster A", "19.99", "5.00")
	p2 := seedProduct(t, db, 1, "Poster B", "7.50", "3.25")

	quote, err := svc.BuildQuote(context.Background(), 1, dto.CheckoutReq{
		ProductIDs:     []int64{p1.ID, p2.ID},
		VariantIndexes: []int{1, 0},
	})
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}

	if len(quote.LineItems) != 2 {
		t.Fatalf("line items = %d, want 2", len(quote.LineItems))
	}

	// 顺序必须跟请求一致
	if quote.LineItems[0].Name != "Poster A" || quote.LineItems[1].Name != "Poster B" {
		t.Errorf("line item order = [%s, %s], want [Poster A, Poster B]",
			quote.LineItems[0].Name, quote.LineItems[1].Name)
	}

	// 价格转分
	if quote.LineItems[0].UnitAmount != 1999 {
		t.Errorf("unit amount = %d, want 1999", quote.LineItems[0].UnitAmount)
	}
	if quote.LineItems[1].UnitAmount != 750 {
		t.Errorf("unit amount = %d, want 750", quote.LineItems[1].UnitAmount)
	}

	// 变体描述：p1 选下标 1 (White)，p2 选下标 0 (Black)
	if quote.LineItems[0].Description != "Color (White) and Size (8.5 x 11)" {
		t.Errorf("description = %q", quote.LineItems[0].Description)
	}
	if quote.LineItems[1].Description != "Color (Black) and Size (8.5 x 11)" {
		t.Errorf("description = %q", quote.LineItems[1].Description)
	}

	// 首图
	if quote.LineItems[0].ImageURL != "https://cdn.example.com/Poster A-main.jpg" {
		t.Errorf("image url = %q", quote.LineItems[0].ImageURL)
	}

	// 配送选项：自提 0 元 + 邮寄汇总 500+325
	if len(quote.ShippingOptions) != 2 {
		t.Fatalf("shipping options = %d, want 2", len(quote.ShippingOptions))
	}
	if quote.ShippingOptions[0].Amount != 0 {
		t.Errorf("pickup amount = %d, want 0", quote.ShippingOptions[0].Amount)
	}
	if quote.ShippingOptions[1].Amount != 825 {
		t.Errorf("shipping amount = %d, want 825", quote.ShippingOptions[1].Amount)
	}

	// 店铺没配置时用兜底币种和国家
	if quote.Currency != "CAD" {
		t.Errorf("currency = %s, want CAD", quote.Currency)
	}
	if len(quote.AllowedCountries) != 2 {
		t.Errorf("allowed countries = %v, want [US CA]", quote.AllowedCountries)
	}
}

func TestCheckoutService_BuildQuote_DuplicateProduct(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := newCheckoutTestService(t, db, &fakePayment{})

	p := seedProduct(t, db, 1, "Poster", "5.00", "5.00")

	quote, err := svc.BuildQuote(context.Background(), 1, dto.CheckoutReq{
		ProductIDs:     []int64{p.ID, p.ID},
		VariantIndexes: []int{0, 1},
	})
	if err != nil {
		t.Fatalf("BuildQuote() error = %v", err)
	}

	// 同一商品两件：两条商品行，运费只收一次
	if len(quote.LineItems) != 2 {
		t.Errorf("line items = %d, want 2", len(quote.LineItems))
	}
	if quote.ShippingOptions[1].Amount != 500 {
		t.Errorf("shipping amount = %d, want 500", quote.ShippingOptions[1].Amount)
	}
}

func TestCheckoutService_BuildQuote_Validation(t *testing.T) {
	db := setupServiceTestDB(t)
	payment := &fakePayment{}
	svc := newCheckoutTestService(t, db, payment)

	p := seedProduct(t, db, 1, "Poster", "5.00", "5.00")

	cases := []struct {
		name    string
		req     dto.CheckoutReq
		wantErr error
	}{
		{"空商品列表", dto.CheckoutReq{}, ErrValidation},
		{"长度不一致", dto.CheckoutReq{ProductIDs: []int64{p.ID}, VariantIndexes: []int{0, 1}}, ErrValidation},
		{"变体下标越界", dto.CheckoutReq{ProductIDs: []int64{p.ID}, VariantIndexes: []int{5}}, ErrValidation},
		{"变体下标为负", dto.CheckoutReq{ProductIDs: []int64{p.ID}, VariantIndexes: []int{-1}}, ErrValidation},
		{"商品不存在", dto.CheckoutReq{ProductIDs: []int64{9999}, VariantIndexes: []int{0}}, ErrNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.BuildQuote(context.Background(), 1, tc.req)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("BuildQuote() error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	// 报价失败不碰任何协作方
	if len(payment.sessions) != 0 {
		t.Errorf("payment sessions = %d, want 0", len(payment.sessions))
	}
	var orderCount int64
	db.Model(&model.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Errorf("orders = %d, want 0", orderCount)
	}
}

func TestCheckoutService_BuildQuote_NoImages(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := newCheckoutTestService(t, db, &fakePayment{})

	p := seedProduct(t, db, 1, "Poster", "5.00", "5.00")
	db.Unscoped().Where("product_id = ?", p.ID).Delete(&model.ProductImage{})

	_, err := svc.BuildQuote(context.Background(), 1, dto.CheckoutReq{
		ProductIDs:     []int64{p.ID},
		VariantIndexes: []int{0},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("BuildQuote() error = %v, want ErrValidation", err)
	}
}

func TestCheckoutService_BuildQuote_RateBasedShippingRejected(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := newCheckoutTestService(t, db, &fakePayment{})

	p := seedProduct(t, db, 1, "Poster", "5.00", "5.00")
	db.Model(&model.Shipping{}).Where("id = ?", p.ShippingID).
		Updates(map[string]interface{}{"is_fixed": false, "price": "0"})

	_, err := svc.BuildQuote(context.Background(), 1, dto.CheckoutReq{
		ProductIDs:     []int64{p.ID},
		VariantIndexes: []int{0},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("BuildQuote() error = %v, want ErrValidation", err)
	}
}

func TestCheckoutService_BuildQuote_WrongStore(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := newCheckoutTestService(t, db, &fakePayment{})

	p := seedProduct(t, db, 1, "Poster", "5.00", "5.00")

	_, err := svc.BuildQuote(context.Background(), 2, dto.CheckoutReq{
		ProductIDs:     []int64{p.ID},
		VariantIndexes: []int{0},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("BuildQuote() error = %v, want ErrNotFound", err)
	}
}

// ==================== Checkout 测试 ====================

func TestCheckoutService_Checkout(t *testing.T) {
	db := setupServiceTestDB(t)
	payment := &fakePayment{}
	svc := newCheckoutTestService(t, db, payment)

	p1 := seedProduct(t, db, 1, "Poster A", "19.99", "5.00")
	p2 := seedProduct(t, db, 1, "Poster B", "7.50", "3.25")

	resp, err := svc.Checkout(context.Background(), 1, dto.CheckoutReq{
		ProductIDs:     []int64{p1.ID, p2.ID},
		VariantIndexes: []int{0, 0},
	})
	if err != nil {
		t.Fatalf("Checkout() error = %v", err)
	}
	if resp.Url == "" {
		t.Error("Checkout() 未返回支付页地址")
	}

	// 订单骨架：未支付 + 两条订单行
	var order model.Order
	if err := db.Preload("Items").First(&order).Error; err != nil {
		t.Fatalf("查询订单失败: %v", err)
	}
	if order.IsPaid {
		t.Error("新订单 is_paid = true, want false")
	}
	if len(order.Items) != 2 {
		t.Errorf("order items = %d, want 2", len(order.Items))
	}
	if order.SessionID == "" {
		t.Error("订单未回填支付会话ID")
	}

	// 会话带 orderId 元数据，跳转地址指向前台
	if len(payment.sessions) != 1 {
		t.Fatalf("payment sessions = %d, want 1", len(payment.sessions))
	}
	session := payment.sessions[0]
	if session.Metadata["orderId"] != fmt.Sprintf("%d", order.ID) {
		t.Errorf("metadata orderId = %s, want %d", session.Metadata["orderId"], order.ID)
	}
	if session.SuccessURL != "https://store.example.com/cart?success=1" {
		t.Errorf("success url = %s", session.SuccessURL)
	}
	if session.CancelURL != "https://store.example.com/cart?canceled=1" {
		t.Errorf("cancel url = %s", session.CancelURL)
	}
}

func TestCheckoutService_Checkout_PaymentFailureKeepsSkeleton(t *testing.T) {
	db := setupServiceTestDB(t)
	payment := &fakePayment{failNext: true}
	svc := newCheckoutTestService(t, db, payment)

	p := seedProduct(t, db, 1, "Poster", "5.00", "5.00")

	_, err := svc.Checkout(context.Background(), 1, dto.CheckoutReq{
		ProductIDs:     []int64{p.ID},
		VariantIndexes: []int{0},
	})
	if err == nil {
		t.Fatal("Checkout() 支付失败时应返回错误")
	}

	// 骨架留给定时任务清理，不回滚
	var count int64
	db.Model(&model.Order{}).Where("is_paid = ?", false).Count(&count)
	if count != 1 {
		t.Errorf("未支付订单 = %d, want 1", count)
	}
}

func TestCheckoutService_Checkout_InvalidRequestWritesNothing(t *testing.T) {
	db := setupServiceTestDB(t)
	payment := &fakePayment{}
	svc := newCheckoutTestService(t, db, payment)

	_, err := svc.Checkout(context.Background(), 1, dto.CheckoutReq{})
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("Checkout() error = %v, want ErrValidation", err)
	}

	var count int64
	db.Model(&model.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("orders = %d, want 0", count)
	}
	if len(payment.sessions) != 0 {
		t.Errorf("payment sessions = %d, want 0", len(payment.sessions))
	}
}
