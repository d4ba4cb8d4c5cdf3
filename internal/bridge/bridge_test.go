package bridge_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/commercekit/event-delivery/internal/bridge"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	mockspkg "github.com/commercekit/event-delivery/internal/mocks"
	"github.com/commercekit/event-delivery/internal/messaging"
	"github.com/commercekit/event-delivery/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl       *gomock.Controller
	subscriber *mockspkg.MockSubscriber
	store      *mockspkg.MockStore
	trigger    *mockspkg.MockTrigger
}

// setupTestBridge creates all the mocks and bridge for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:       ctrl,
		subscriber: mockspkg.NewMockSubscriber(ctrl),
		store:      mockspkg.NewMockStore(ctrl),
		trigger:    mockspkg.NewMockTrigger(ctrl),
	}
}

func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

// runWithEvent drives the bridge's event handler with a single event and
// returns the handler's verdict
func runWithEvent(b bridge.Bridge, m *testBridgeMocks, event *domain.DomainEvent) error {
	var handlerErr error
	m.subscriber.
		EXPECT().
		Subscribe(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, handler messaging.EventHandler) error {
			handlerErr = handler(ctx, event)
			return nil
		})

	_ = b.Run(context.Background())
	return handlerErr
}

func orderCreatedEvent() *domain.DomainEvent {
	return &domain.DomainEvent{
		EventID:    "01J0000000000000000000TEST",
		EventType:  domain.EventTypeOrderCreated,
		Object:     []byte(`{"id":"order-1"}`),
		OccurredAt: time.Now(),
	}
}

func TestBridge_FansOutToSubscribedWebhooks(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	event := orderCreatedEvent()
	webhooks := []*schema.Webhook{{ID: 1}, {ID: 2}}

	mocks.store.
		EXPECT().
		GetWebhooksForEvent(gomock.Any(), domain.EventTypeOrderCreated).
		Return(webhooks, nil)
	mocks.trigger.
		EXPECT().
		TriggerAsync(gomock.Any(), event, webhooks).
		Return([]*schema.EventDelivery{{ID: 10}, {ID: 11}}, nil)

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	err := runWithEvent(b, mocks, event)

	assert.NoError(t, err)
}

func TestBridge_NoSubscribedWebhooks(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	event := orderCreatedEvent()

	mocks.store.
		EXPECT().
		GetWebhooksForEvent(gomock.Any(), domain.EventTypeOrderCreated).
		Return(nil, nil)
	// No trigger call expected

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	err := runWithEvent(b, mocks, event)

	assert.NoError(t, err)
}

func TestBridge_DropsNonAsyncEvent(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	// Sync events never travel over the stream; if one shows up it is dropped
	// without a store lookup
	event := orderCreatedEvent()
	event.EventType = domain.EventTypePaymentCapture

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	err := runWithEvent(b, mocks, event)

	assert.NoError(t, err)
}

func TestBridge_DropsWildcardEvent(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	event := orderCreatedEvent()
	event.EventType = domain.EventTypeAny

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	err := runWithEvent(b, mocks, event)

	assert.NoError(t, err)
}

func TestBridge_StoreErrorRequeues(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	event := orderCreatedEvent()

	mocks.store.
		EXPECT().
		GetWebhooksForEvent(gomock.Any(), domain.EventTypeOrderCreated).
		Return(nil, assert.AnError)

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	err := runWithEvent(b, mocks, event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to look up webhooks")
}

func TestBridge_TriggerErrorRequeues(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	event := orderCreatedEvent()
	webhooks := []*schema.Webhook{{ID: 1}}

	mocks.store.
		EXPECT().
		GetWebhooksForEvent(gomock.Any(), domain.EventTypeOrderCreated).
		Return(webhooks, nil)
	mocks.trigger.
		EXPECT().
		TriggerAsync(gomock.Any(), event, webhooks).
		Return(nil, assert.AnError)

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	err := runWithEvent(b, mocks, event)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to trigger deliveries")
}

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	mocks.subscriber.
		EXPECT().
		Close()

	b := bridge.NewBridge(mocks.subscriber, mocks.store, mocks.trigger)
	b.Close()
}
