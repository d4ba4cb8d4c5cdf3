package temporal

import (
	"context"
	"fmt"
	"time"

	"go.temporal.io/api/enums/v1"
	"go.temporal.io/sdk/client"

	"github.com/commercekit/event-delivery/internal/delivery"
	"github.com/commercekit/event-delivery/internal/workflows"
)

// scheduler implements delivery.Scheduler by starting one SendWebhookRequest
// workflow per delivery. The workflow ID embeds the delivery ID so a delivery
// enqueued twice while still running deduplicates instead of double-sending.
// The workflow is referenced by its registered name so callers that never run
// a worker (the bridge, the API) can still enqueue.
type scheduler struct {
	orchestrator TemporalOrchestrator
	taskQueue    string
}

// NewScheduler creates a Temporal-backed delivery scheduler
func NewScheduler(orchestrator TemporalOrchestrator, taskQueue string) delivery.Scheduler {
	if taskQueue == "" {
		taskQueue = workflows.TaskQueue
	}
	return &scheduler{
		orchestrator: orchestrator,
		taskQueue:    taskQueue,
	}
}

func (s *scheduler) Enqueue(ctx context.Context, deliveryID uint64, runAfter time.Duration) error {
	options := client.StartWorkflowOptions{
		ID:                    fmt.Sprintf("webhook-delivery-%d", deliveryID),
		TaskQueue:             s.taskQueue,
		WorkflowIDReusePolicy: enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE,
		StartDelay:            runAfter,
	}

	_, err := s.orchestrator.ExecuteWorkflow(ctx, options, workflows.SendWebhookRequestName, workflows.SendWebhookRequestInput{
		DeliveryID: deliveryID,
	})
	if err != nil {
		return fmt.Errorf("failed to start delivery workflow: %w", err)
	}

	return nil
}
