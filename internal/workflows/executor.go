package workflows

import (
	"context"
	"time"

	"github.com/commercekit/event-delivery/internal/delivery"
)

// Executor defines the activities the delivery workflow executes
//
//go:generate mockgen -source=executor.go -destination=../mocks/executor_core.go -package=mocks -mock_names=Executor=MockCoreExecutor
type Executor interface {
	// SendDelivery performs one send attempt for a delivery and records the
	// attempt row. taskID ties the attempt to the workflow execution.
	// retryDelay is the pause the workflow will take before the next attempt
	// should this one fail retryably; zero means no further retry remains.
	SendDelivery(ctx context.Context, deliveryID uint64, taskID string, retryDelay time.Duration) (*delivery.SendResult, error)

	// MarkDeliverySucceeded finalizes a successful delivery and detaches its payload
	MarkDeliverySucceeded(ctx context.Context, deliveryID uint64) error

	// MarkDeliveryFailed marks a delivery failed once its retries are exhausted
	MarkDeliveryFailed(ctx context.Context, deliveryID uint64) error
}

// executor is the concrete Executor backed by the delivery service
type executor struct {
	service *delivery.Service
}

// NewExecutor creates the activity executor
func NewExecutor(service *delivery.Service) Executor {
	return &executor{service: service}
}

func (e *executor) SendDelivery(ctx context.Context, deliveryID uint64, taskID string, retryDelay time.Duration) (*delivery.SendResult, error) {
	return e.service.SendDelivery(ctx, deliveryID, taskID, retryDelay)
}

func (e *executor) MarkDeliverySucceeded(ctx context.Context, deliveryID uint64) error {
	return e.service.MarkDeliverySucceeded(ctx, deliveryID)
}

func (e *executor) MarkDeliveryFailed(ctx context.Context, deliveryID uint64) error {
	return e.service.MarkDeliveryFailed(ctx, deliveryID)
}
