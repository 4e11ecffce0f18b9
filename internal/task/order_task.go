package task

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"turnstone_admin_v1/internal/repository"
)

// ==================== OrderCleanupTask 订单清理任务 ====================

// OrderCleanupTask 清理超时未支付的订单骨架
// 结账落单后支付会话没走完的订单会一直留着，定时扫掉
type OrderCleanupTask struct {
	orderRepo repository.OrderRepository
	cron      *cron.Cron

	// 未支付订单保留时长，超过即删除
	retention time.Duration
}

// NewOrderCleanupTask 创建订单清理任务
func NewOrderCleanupTask(orderRepo repository.OrderRepository) *OrderCleanupTask {
	return &OrderCleanupTask{
		orderRepo: orderRepo,
		cron:      cron.New(cron.WithSeconds()),
		retention: 24 * time.Hour,
	}
}

// SetRetention 设置未支付订单保留时长
func (t *OrderCleanupTask) SetRetention(d time.Duration) {
	t.retention = d
}

// Start 启动定时任务
func (t *OrderCleanupTask) Start() {
	// 首次执行
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		log.Println("[OrderCleanupTask] 执行首次清理...")
		t.cleanup(ctx)
	}()

	// 每小时执行
	_, err := t.cron.AddFunc("0 0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		t.cleanup(ctx)
	})
	if err != nil {
		log.Printf("[OrderCleanupTask] 定时任务启动失败: %v", err)
		return
	}

	t.cron.Start()
	log.Println("[OrderCleanupTask] 已启动 (每小时)")
}

// Stop 停止任务
func (t *OrderCleanupTask) Stop() {
	ctx := t.cron.Stop()
	<-ctx.Done()
	log.Println("[OrderCleanupTask] 已停止")
}

// cleanup 删掉超过保留时长仍未支付的订单
func (t *OrderCleanupTask) cleanup(ctx context.Context) {
	before := time.Now().Add(-t.retention)
	rows, err := t.orderRepo.DeleteStaleUnpaid(ctx, before)
	if err != nil {
		log.Printf("[OrderCleanupTask] 清理失败: %v", err)
		return
	}
	if rows > 0 {
		log.Printf("[OrderCleanupTask] 已清理 %d 个超时未支付订单", rows)
	}
}
