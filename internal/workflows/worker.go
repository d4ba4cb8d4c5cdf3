package workflows

import (
	"time"

	"go.temporal.io/sdk/workflow"
)

const (
	// TaskQueue is the Temporal task queue all delivery workflows run on
	TaskQueue = "event-delivery"
	// SendWebhookRequestName is the registered workflow name clients start
	// deliveries under
	SendWebhookRequestName = "SendWebhookRequest"
)

// WorkerCore defines the workflows the delivery worker registers
//
//go:generate mockgen -source=worker.go -destination=../mocks/worker_core.go -package=mocks -mock_names=WorkerCore=MockWorkerCore
type WorkerCore interface {
	// SendWebhookRequest drives one delivery to a terminal state: it executes
	// send attempts with exponential backoff between them until one succeeds
	// or the retry budget is exhausted
	SendWebhookRequest(ctx workflow.Context, input SendWebhookRequestInput) error
}

// SendWebhookRequestInput is the workflow argument for SendWebhookRequest
type SendWebhookRequestInput struct {
	// DeliveryID is the delivery row to execute
	DeliveryID uint64
}

// WorkerCoreConfig holds the retry policy of the delivery workflow
type WorkerCoreConfig struct {
	// RetryBackoffBase is the delay before the first retry; each further
	// retry doubles it
	RetryBackoffBase time.Duration
	// MaxRetries is the number of retries after the initial attempt
	MaxRetries int
	// SendTimeout bounds one send activity execution
	SendTimeout time.Duration
}

// workerCore is the concrete implementation of WorkerCore
type workerCore struct {
	config   WorkerCoreConfig
	executor Executor
}

// NewWorkerCore creates a new worker core instance
func NewWorkerCore(executor Executor, config WorkerCoreConfig) WorkerCore {
	if config.RetryBackoffBase == 0 {
		config.RetryBackoffBase = 10 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 5
	}
	if config.SendTimeout == 0 {
		config.SendTimeout = 30 * time.Second
	}

	return &workerCore{
		config:   config,
		executor: executor,
	}
}
