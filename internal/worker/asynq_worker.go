package worker

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/xihu-next/internal/logger"
	"github.com/xihu-next/internal/provider"
	"github.com/xihu-next/internal/queue"
	"github.com/xihu-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskShopOrderTimeoutCancel, c.handleShopOrderTimeoutCancel)
	mux.HandleFunc(queue.TaskBillGenerate, c.handleBillGenerate)
}

func (c *Consumer) handleShopOrderTimeoutCancel(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_shop_order_timeout_cancel_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ShopOrderTimeoutCancelPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_shop_order_timeout_cancel_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_shop_order_timeout_cancel_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}
	if c.ShopOrderService == nil {
		logger.Warnw("worker_shop_order_timeout_cancel_skip_service_nil", "order_id", payload.OrderID)
		return nil
	}
	if err := c.ShopOrderService.TimeoutCancel(payload.OrderID); err != nil {
		if errors.Is(err, service.ErrOrderStatusInvalid) {
			logger.Debugw("worker_shop_order_timeout_cancel_skip_invalid_status", "order_id", payload.OrderID)
			return nil
		}
		logger.Warnw("worker_shop_order_timeout_cancel_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

func (c *Consumer) handleBillGenerate(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_bill_generate_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.BillGeneratePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_bill_generate_unmarshal_failed", "error", err)
		return err
	}
	if payload.UserID == 0 {
		logger.Debugw("worker_bill_generate_skip_invalid_payload", "user_id", payload.UserID)
		return nil
	}
	if c.PaymentService == nil {
		logger.Warnw("worker_bill_generate_skip_service_nil", "user_id", payload.UserID)
		return nil
	}
	created, err := c.PaymentService.GenerateForPeriod(payload.UserID, payload.Period, payload.Items)
	if err != nil {
		logger.Warnw("worker_bill_generate_failed", "user_id", payload.UserID, "period", payload.Period, "error", err)
		return err
	}
	logger.Debugw("worker_bill_generate_done", "user_id", payload.UserID, "period", payload.Period, "created", created)
	return nil
}
