package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"turnstone_admin_v1/internal/api/dto"
	"turnstone_admin_v1/internal/model"
	"turnstone_admin_v1/internal/repository"
	"turnstone_admin_v1/pkg/utils"
)

// 支付网关的会话完成事件类型
const eventCheckoutCompleted = "checkout.session.completed"

// OrderService 订单服务
type OrderService struct {
	orderRepo repository.OrderRepository
	payment   PaymentProvider
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository, payment PaymentProvider) *OrderService {
	return &OrderService{orderRepo: orderRepo, payment: payment}
}

// GetList 店铺订单列表，总价按当前商品价实时重算
func (s *OrderService) GetList(ctx context.Context, storeID int64) (*dto.OrderListResp, error) {
	list, err := s.orderRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	respList := make([]dto.OrderResp, 0, len(list))
	for i := range list {
		respList = append(respList, s.toResp(&list[i]))
	}
	return &dto.OrderListResp{
		Total: int64(len(respList)),
		List:  respList,
	}, nil
}

// HandleWebhook 处理支付回调
// 签名校验 -> 事件去重 -> 解析 orderId -> 翻单（只翻未支付的，天然幂等）
func (s *OrderService) HandleWebhook(ctx context.Context, payload []byte, sigHeader string) error {
	if err := s.payment.VerifySignature(payload, sigHeader); err != nil {
		return err
	}

	var event dto.PaymentWebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: 回调 payload 解析失败", ErrValidation)
	}

	// 网关会重发事件，按事件 ID 去重
	// 只在处理成功后落缓存，处理失败的事件要留给网关重试
	if event.ID != "" {
		if _, seen := utils.GetCache("webhook:" + event.ID); seen {
			log.Printf("[webhook] 重复事件已跳过: %s", event.ID)
			return nil
		}
	}

	// 只关心会话完成事件，其余静默放过
	if event.Type != eventCheckoutCompleted {
		s.markEventSeen(event.ID)
		return nil
	}

	orderID, err := strconv.ParseInt(event.Data.Object.Metadata["orderId"], 10, 64)
	if err != nil || orderID <= 0 {
		return fmt.Errorf("%w: 回调缺少有效的 orderId", ErrValidation)
	}

	customer := event.Data.Object.CustomerDetails
	address := joinAddress(customer.Address)

	rows, err := s.orderRepo.MarkPaid(ctx, orderID, customer.Phone, address, datatypes.JSON(payload))
	if err != nil {
		return err
	}
	if rows == 0 {
		// 没翻到：要么订单不存在，要么早被前一次回调翻过了
		log.Printf("[webhook] 订单 %d 未翻动（不存在或已支付）", orderID)
	}

	s.markEventSeen(event.ID)
	return nil
}

// markEventSeen 处理完成后记录事件 ID，挡掉网关的重发
func (s *OrderService) markEventSeen(eventID string) {
	if eventID == "" {
		return
	}
	utils.SetCacheWithTTL("webhook:"+eventID, "1", 24*time.Hour)
}

// joinAddress 地址各段按逗号拼成一行，空段跳过
func joinAddress(addr dto.PaymentWebhookAddress) string {
	parts := []string{addr.Line1, addr.Line2, addr.City, addr.State, addr.PostalCode, addr.Country}
	filled := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			filled = append(filled, p)
		}
	}
	return strings.Join(filled, ", ")
}

func (s *OrderService) toResp(order *model.Order) dto.OrderResp {
	names := make([]string, 0, len(order.Items))
	total := decimal.Zero
	for _, item := range order.Items {
		if item.Product == nil {
			continue
		}
		names = append(names, item.Product.Name)
		total = total.Add(item.Product.Price)
	}
	return dto.OrderResp{
		ID:         order.ID,
		StoreID:    order.StoreID,
		Products:   strings.Join(names, ", "),
		Phone:      order.Phone,
		Address:    order.Address,
		TotalPrice: total.StringFixed(2),
		IsPaid:     order.IsPaid,
		CreatedAt:  order.CreatedAt,
	}
}
