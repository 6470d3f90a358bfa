package queue

import (
	"encoding/json"

	"github.com/xihu-next/internal/constants"
	"github.com/xihu-next/internal/models"

	"github.com/hibiken/asynq"
)

const (
	// TaskShopOrderTimeoutCancel 商城订单超时取消任务
	TaskShopOrderTimeoutCancel = constants.TaskShopOrderTimeoutCancel
	// TaskBillGenerate 周期账单生成任务
	TaskBillGenerate = constants.TaskPaymentBillGenerate
)

// ShopOrderTimeoutCancelPayload 超时取消任务载荷
type ShopOrderTimeoutCancelPayload struct {
	OrderID uint `json:"order_id"`
}

// BillGeneratePayload 账单生成任务载荷
type BillGeneratePayload struct {
	UserID uint                    `json:"user_id"`
	Period string                  `json:"period"`
	Items  map[string]models.Money `json:"items"`
}

// NewShopOrderTimeoutCancelTask 创建超时取消任务
func NewShopOrderTimeoutCancelTask(payload ShopOrderTimeoutCancelPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskShopOrderTimeoutCancel, body), nil
}

// NewBillGenerateTask 创建账单生成任务
func NewBillGenerateTask(payload BillGeneratePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskBillGenerate, body), nil
}
