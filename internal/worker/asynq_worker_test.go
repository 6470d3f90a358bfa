package worker

import (
	"context"
	"testing"

	"github.com/xihu-next/internal/provider"
	"github.com/xihu-next/internal/queue"

	"github.com/hibiken/asynq"
)

func TestHandleShopOrderTimeoutCancelMalformedPayload(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task := asynq.NewTask(queue.TaskShopOrderTimeoutCancel, []byte("{not-json"))
	if err := consumer.handleShopOrderTimeoutCancel(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should fail")
	}
}

func TestHandleShopOrderTimeoutCancelSkipsZeroOrderID(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task, err := queue.NewShopOrderTimeoutCancelTask(queue.ShopOrderTimeoutCancelPayload{OrderID: 0})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleShopOrderTimeoutCancel(context.Background(), task); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
}

func TestHandleBillGenerateSkipsZeroUserID(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task, err := queue.NewBillGenerateTask(queue.BillGeneratePayload{Period: "2026-08"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleBillGenerate(context.Background(), task); err != nil {
		t.Fatalf("zero user id should be skipped, got %v", err)
	}
}

func TestHandleBillGenerateSkipsNilService(t *testing.T) {
	consumer := NewConsumer(&provider.Container{})
	task, err := queue.NewBillGenerateTask(queue.BillGeneratePayload{UserID: 1, Period: "2026-08"})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleBillGenerate(context.Background(), task); err != nil {
		t.Fatalf("nil payment service should be skipped, got %v", err)
	}
}

func TestNewServiceRequiresEnabledQueue(t *testing.T) {
	if _, err := NewService(nil, NewConsumer(&provider.Container{})); err == nil {
		t.Fatalf("nil config should fail")
	}
}
