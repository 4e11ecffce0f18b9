package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/repository"
)

func newShippingTestService(db *gorm.DB) *ShippingService {
	return NewShippingService(
		repository.NewShippingRepository(db),
		repository.NewProductRepository(db),
		NewStoreService(repository.NewStoreRepository(db)),
	)
}

func TestShippingService_Create(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	resp, err := svc.Create(context.Background(), 10, dto.ShippingCreateReq{
		StoreID: 1,
		Name:    "Standard",
		IsFixed: true,
		Price:   mustDecimal(t, "5.00"),
		// 非生效侧字段应被清零
		Width: mustDecimal(t, "30"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if !resp.Price.Equal(mustDecimal(t, "5.00")) {
		t.Errorf("price = %s, want 5.00", resp.Price)
	}
	if !resp.Width.IsZero() {
		t.Errorf("固定运费的 width = %s, want 0", resp.Width)
	}
}

func TestShippingService_Create_Validation(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	cases := []struct {
		name string
		req  dto.ShippingCreateReq
	}{
		{"名称为空", dto.ShippingCreateReq{StoreID: 1, IsFixed: true, Price: mustDecimal(t, "5")}},
		{"固定运费无价格", dto.ShippingCreateReq{StoreID: 1, Name: "S", IsFixed: true}},
		{"按实际计价缺尺寸", dto.ShippingCreateReq{
			StoreID: 1, Name: "R", IsFixed: false,
			Width: mustDecimal(t, "30"), Height: mustDecimal(t, "20"), Length: mustDecimal(t, "10"),
			// Weight 缺失
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(context.Background(), 10, tc.req); !errors.Is(err, ErrValidation) {
				t.Errorf("Create() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestShippingService_Create_Forbidden(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	// 用户 99 不持有店铺 1
	_, err := svc.Create(context.Background(), 99, dto.ShippingCreateReq{
		StoreID: 1, Name: "S", IsFixed: true, Price: mustDecimal(t, "5"),
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("Create() error = %v, want ErrForbidden", err)
	}
}

func TestShippingService_Update_NotFound(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	// 0 行受影响必须报 404，不能静默成功
	err := svc.Update(context.Background(), 10, 9999, dto.ShippingUpdateReq{
		StoreID: 1, Name: "S", IsFixed: true, Price: mustDecimal(t, "5"),
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestShippingService_Delete(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	created, err := svc.Create(context.Background(), 10, dto.ShippingCreateReq{
		StoreID: 1, Name: "S", IsFixed: true, Price: mustDecimal(t, "5"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := svc.Delete(context.Background(), 10, 1, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	// 再删一次 → 404
	if err := svc.Delete(context.Background(), 10, 1, created.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("第二次 Delete() error = %v, want ErrNotFound", err)
	}
}

func TestShippingService_Delete_Referenced(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	product := seedProduct(t, db, 1, "Poster", "5.00", "3.00")

	// 被商品引用的运费方式不能删
	err := svc.Delete(context.Background(), 10, 1, product.ShippingID)
	if !errors.Is(err, ErrConflict) {
		t.Errorf("Delete() error = %v, want ErrConflict", err)
	}

	// 商品删掉后就可以删了
	if err := db.Unscoped().Delete(product).Error; err != nil {
		t.Fatalf("删除商品失败: %v", err)
	}
	if err := svc.Delete(context.Background(), 10, 1, product.ShippingID); err != nil {
		t.Errorf("Delete() error = %v, want nil", err)
	}
}

func TestShippingService_GetList(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newShippingTestService(db)

	for _, name := range []string{"A", "B"} {
		if _, err := svc.Create(context.Background(), 10, dto.ShippingCreateReq{
			StoreID: 1, Name: name, IsFixed: true, Price: mustDecimal(t, "5"),
		}); err != nil {
			t.Fatalf("Create(%s) error = %v", name, err)
		}
	}

	resp, err := svc.GetList(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetList() error = %v", err)
	}
	if resp.Total != 2 {
		t.Errorf("total = %d, want 2", resp.Total)
	}
}
