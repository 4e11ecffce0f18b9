package service

import (
	"context"
	"errors"
	"testing"

	"gorm.io/gorm"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/repository"
)

func newGalleryTestService(db *gorm.DB) *GalleryService {
	return NewGalleryService(
		repository.NewGalleryRepository(db),
		NewStoreService(repository.NewStoreRepository(db)),
	)
}

func TestGalleryService_Upsert(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newGalleryTestService(db)

	resp, err := svc.Upsert(context.Background(), 10, dto.GalleryUpsertReq{
		StoreID: 1,
		Images: []dto.GalleryImageReq{
			{Url: "https://cdn.example.com/a.jpg", Sort: 0},
			{Url: "https://cdn.example.com/b.jpg", Sort: 1},
		},
	})
	if err != nil {
		t.Fatalf("Upsert() error = %v", err)
	}
	if len(resp.Images) != 2 {
		t.Fatalf("图片数 = %d, want 2", len(resp.Images))
	}
	if resp.Images[0].ID == 0 {
		t.Error("回读后图片 ID 不能为 0")
	}

	// 再次提交只有一张，旧图应全部被替换掉
	resp, err = svc.Upsert(context.Background(), 10, dto.GalleryUpsertReq{
		StoreID: 1,
		Images:  []dto.GalleryImageReq{{Url: "https://cdn.example.com/c.jpg", Sort: 0}},
	})
	if err != nil {
		t.Fatalf("第二次 Upsert() error = %v", err)
	}
	if len(resp.Images) != 1 {
		t.Fatalf("替换后图片数 = %d, want 1", len(resp.Images))
	}
	if resp.Images[0].Url != "https://cdn.example.com/c.jpg" {
		t.Errorf("url = %s, want c.jpg", resp.Images[0].Url)
	}
}

func TestGalleryService_Upsert_EmptyURL(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newGalleryTestService(db)

	_, err := svc.Upsert(context.Background(), 10, dto.GalleryUpsertReq{
		StoreID: 1,
		Images:  []dto.GalleryImageReq{{Url: "", Sort: 0}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Upsert() error = %v, want ErrValidation", err)
	}
}

func TestGalleryService_GetByStore_Empty(t *testing.T) {
	db := setupServiceTestDB(t)
	seedStore(t, db, 1, 10)
	svc := newGalleryTestService(db)

	// 从未创建过图库的店铺返回空列表，不报 404
	resp, err := svc.GetByStore(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetByStore() error = %v", err)
	}
	if resp.Images == nil || len(resp.Images) != 0 {
		t.Errorf("images = %v, want 空列表", resp.Images)
	}
}
