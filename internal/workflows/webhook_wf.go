package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/delivery"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/store/schema"
)

// SendWebhookRequest executes a delivery until it reaches a terminal state.
// The retry loop lives in the workflow rather than in an activity retry
// policy: each attempt must leave its own attempt row, and the delay before
// retry N is RetryBackoffBase * 2^(N-1), which workflow.Sleep reproduces
// deterministically across replays.
func (w *workerCore) SendWebhookRequest(ctx workflow.Context, input SendWebhookRequestInput) error {
	logger.InfoWf(ctx, "Starting webhook delivery",
		zap.Uint64("deliveryID", input.DeliveryID))

	// Transport failures come back inside SendResult, not as activity errors;
	// the activity retry policy only absorbs infrastructure hiccups (DB away,
	// worker restart)
	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: w.config.SendTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			MaximumAttempts: 3,
			InitialInterval: 5 * time.Second,
		},
	}
	activityCtx := workflow.WithActivityOptions(ctx, activityOptions)

	taskID := workflow.GetInfo(ctx).WorkflowExecution.ID

	for attempt := 0; ; attempt++ {
		// The delay before the next retry, should this attempt fail
		// retryably. The activity reports it to observability as the next
		// retry time; zero on the last attempt, where no retry remains.
		var retryDelay time.Duration
		if attempt < w.config.MaxRetries {
			retryDelay = w.config.RetryBackoffBase * (1 << attempt)
		}

		var result *delivery.SendResult
		err := workflow.ExecuteActivity(activityCtx, w.executor.SendDelivery, input.DeliveryID, taskID, retryDelay).Get(activityCtx, &result)
		if err != nil {
			return fmt.Errorf("failed to execute send attempt: %w", err)
		}

		if result.DeliveryMissing {
			logger.WarnWf(ctx, "Delivery vanished, stopping",
				zap.Uint64("deliveryID", input.DeliveryID))
			return nil
		}

		if result.WebhookInactive {
			logger.InfoWf(ctx, "Webhook inactive, delivery marked failed",
				zap.Uint64("deliveryID", input.DeliveryID))
			return nil
		}

		if result.Status == schema.EventDeliveryStatusSuccess {
			if err := workflow.ExecuteActivity(activityCtx, w.executor.MarkDeliverySucceeded, input.DeliveryID).Get(activityCtx, nil); err != nil {
				return fmt.Errorf("failed to finalize delivery: %w", err)
			}
			logger.InfoWf(ctx, "Webhook delivered",
				zap.Uint64("deliveryID", input.DeliveryID),
				zap.Int("attempts", attempt+1))
			return nil
		}

		if !result.Retryable || attempt >= w.config.MaxRetries {
			if err := workflow.ExecuteActivity(activityCtx, w.executor.MarkDeliveryFailed, input.DeliveryID).Get(activityCtx, nil); err != nil {
				return fmt.Errorf("failed to mark delivery failed: %w", err)
			}
			logger.WarnWf(ctx, "Webhook delivery exhausted",
				zap.Uint64("deliveryID", input.DeliveryID),
				zap.Int("attempts", attempt+1),
				zap.Bool("retryable", result.Retryable))
			return nil
		}

		// Retry N sleeps base * 2^(N-1): 10s, 20s, 40s, 80s, 160s
		logger.InfoWf(ctx, "Webhook delivery failed, backing off",
			zap.Uint64("deliveryID", input.DeliveryID),
			zap.Int("attempt", attempt+1),
			zap.Duration("backoff", retryDelay))
		if err := workflow.Sleep(ctx, retryDelay); err != nil {
			return err
		}
	}
}
