package repository

import (
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"turnstone_admin_v1/internal/model"
)

// OrderRepository 订单仓储接口
type OrderRepository interface {
	// CreateWithItems 创建订单及全部订单行，单事务，要么全部落库要么全部不落
	CreateWithItems(ctx context.Context, order *model.Order, productIDs []int64) error
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	ListByStore(ctx context.Context, storeID int64) ([]model.Order, error)

	// 支付回调
	UpdateSessionID(ctx context.Context, id int64, sessionID string) error
	MarkPaid(ctx context.Context, id int64, phone, address string, payload datatypes.JSON) (int64, error)

	// 清理
	DeleteStaleUnpaid(ctx context.Context, before time.Time) (int64, error)
}

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) CreateWithItems(ctx context.Context, order *model.Order, productIDs []int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Create(order).Error; err != nil {
			return err
		}
		items := make([]model.OrderItem, 0, len(productIDs))
		for _, productID := range productIDs {
			items = append(items, model.OrderItem{
				OrderID:   order.ID,
				ProductID: productID,
			})
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		order.Items = items
		return nil
	})
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepo) ListByStore(ctx context.Context, storeID int64) ([]model.Order, error) {
	var list []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("store_id = ?", storeID).
		Order("id DESC").
		Find(&list).Error
	return list, err
}

func (r *orderRepo) UpdateSessionID(ctx context.Context, id int64, sessionID string) error {
	return r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ?", id).
		Update("session_id", sessionID).Error
}

// MarkPaid 标记已支付，只翻未支付的单，重复回调天然幂等（0 行表示没翻到）
func (r *orderRepo) MarkPaid(ctx context.Context, id int64, phone, address string, payload datatypes.JSON) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&model.Order{}).
		Where("id = ? AND is_paid = ?", id, false).
		Updates(map[string]interface{}{
			"is_paid":      true,
			"paid_at":      &now,
			"phone":        phone,
			"address":      address,
			"session_data": payload,
		})
	return result.RowsAffected, result.Error
}

// DeleteStaleUnpaid 清掉超时未支付的孤儿订单（支付失败后留下的骨架）
func (r *orderRepo) DeleteStaleUnpaid(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_paid = ? AND created_at < ?", false, before).
		Delete(&model.Order{})
	return result.RowsAffected, result.Error
}
