package workflows_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/testsuite"

	"github.com/commercekit/event-delivery/internal/delivery"
	"github.com/commercekit/event-delivery/internal/logger"
	"github.com/commercekit/event-delivery/internal/mocks"
	"github.com/commercekit/event-delivery/internal/store/schema"
	"github.com/commercekit/event-delivery/internal/workflows"
)

// WebhookWorkflowTestSuite is the test suite for the delivery workflow
type WebhookWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockCoreExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *WebhookWorkflowTestSuite) SetupTest() {
	// Initialize logger for tests
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockCoreExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		RetryBackoffBase: 10 * time.Second,
		MaxRetries:       5,
		SendTimeout:      30 * time.Second,
	})
}

// TearDownTest is called after each test
func (s *WebhookWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestWebhookWorkflowTestSuite runs the test suite
func TestWebhookWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(WebhookWorkflowTestSuite))
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_SuccessFirstAttempt() {
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(&delivery.SendResult{Status: schema.EventDeliveryStatusSuccess}, nil).
		Once()
	s.env.OnActivity(s.executor.MarkDeliverySucceeded, mock.Anything, uint64(42)).
		Return(nil).
		Once()

	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_RetriesThenSucceeds() {
	statusCode := 503
	failed := &delivery.SendResult{
		Status:     schema.EventDeliveryStatusFailed,
		StatusCode: &statusCode,
		Retryable:  true,
	}

	// Two failures, then success: three attempts, two backoff sleeps
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(failed, nil).
		Times(2)
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(&delivery.SendResult{Status: schema.EventDeliveryStatusSuccess}, nil).
		Once()
	s.env.OnActivity(s.executor.MarkDeliverySucceeded, mock.Anything, uint64(42)).
		Return(nil).
		Once()

	start := s.env.Now()
	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	// Backoff doubles: 10s after the first failure, 20s after the second
	elapsed := s.env.Now().Sub(start)
	s.GreaterOrEqual(elapsed, 30*time.Second)
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_ExhaustsRetries() {
	failed := &delivery.SendResult{
		Status:    schema.EventDeliveryStatusFailed,
		Retryable: true,
	}

	// Initial attempt plus five retries, then the delivery is marked failed
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(failed, nil).
		Times(6)
	s.env.OnActivity(s.executor.MarkDeliveryFailed, mock.Anything, uint64(42)).
		Return(nil).
		Once()

	start := s.env.Now()
	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	// Sleeps sum to 10+20+40+80+160 = 310s
	elapsed := s.env.Now().Sub(start)
	s.GreaterOrEqual(elapsed, 310*time.Second)
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_PassesRetryDelayToActivity() {
	failed := &delivery.SendResult{
		Status:    schema.EventDeliveryStatusFailed,
		Retryable: true,
	}

	// Each attempt is told the delay the workflow will sleep before the next
	// one, so attempt records can announce the next retry time: base for the
	// first attempt, doubled for the second
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, 10*time.Second).
		Return(failed, nil).
		Once()
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, 20*time.Second).
		Return(failed, nil).
		Once()
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, 40*time.Second).
		Return(&delivery.SendResult{Status: schema.EventDeliveryStatusSuccess}, nil).
		Once()
	s.env.OnActivity(s.executor.MarkDeliverySucceeded, mock.Anything, uint64(42)).
		Return(nil).
		Once()

	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_DeliveryMissing() {
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(&delivery.SendResult{DeliveryMissing: true}, nil).
		Once()

	// No finalization activity runs for a vanished delivery
	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_WebhookInactive() {
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(&delivery.SendResult{
			WebhookInactive: true,
			Status:          schema.EventDeliveryStatusFailed,
		}, nil).
		Once()

	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *WebhookWorkflowTestSuite) TestSendWebhookRequest_NonRetryableFailure() {
	s.env.OnActivity(s.executor.SendDelivery, mock.Anything, uint64(42), mock.Anything, mock.Anything).
		Return(&delivery.SendResult{
			Status:    schema.EventDeliveryStatusFailed,
			Retryable: false,
		}, nil).
		Once()
	s.env.OnActivity(s.executor.MarkDeliveryFailed, mock.Anything, uint64(42)).
		Return(nil).
		Once()

	s.env.ExecuteWorkflow(s.workerCore.SendWebhookRequest, workflows.SendWebhookRequestInput{DeliveryID: 42})

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}
