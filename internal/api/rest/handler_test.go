package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/commercekit/event-delivery/internal/api/middleware"
	"github.com/commercekit/event-delivery/internal/api/rest"
	"github.com/commercekit/event-delivery/internal/domain"
	"github.com/commercekit/event-delivery/internal/logger"
	mockspkg "github.com/commercekit/event-delivery/internal/mocks"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/store/schema"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	code := m.Run()
	os.Exit(code)
}

type testAPIMocks struct {
	ctrl      *gomock.Controller
	store     *mockspkg.MockStore
	scheduler *mockspkg.MockScheduler
}

func newTestRouter(t *testing.T) (*gin.Engine, *testAPIMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := &testAPIMocks{
		ctrl:      ctrl,
		store:     mockspkg.NewMockStore(ctrl),
		scheduler: mockspkg.NewMockScheduler(ctrl),
	}

	router := gin.New()
	handler := rest.NewHandler(mocks.store, mocks.scheduler)
	rest.SetupRoutes(router, handler, middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})

	return router, mocks
}

func perform(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "ApiKey "+testAPIKey)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleWebhookRow() *schema.Webhook {
	return &schema.Webhook{
		ID:        4,
		WebhookID: "11111111-2222-3333-4444-555555555555",
		AppID:     9,
		Name:      "orders",
		TargetURL: "https://receiver.example.com/hook",
		SecretKey: "s3cret",
		Events:    datatypes.JSON([]byte(`["order_created"]`)),
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestHealthCheck_NoAuthRequired(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRoutes_RejectMissingCredentials(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/webhooks/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateApp(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		CreateApp(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CreateAppInput) (*schema.App, error) {
			assert.NotEmpty(t, input.AppID) // Generated when omitted
			assert.Equal(t, "storefront", input.Name)
			assert.True(t, input.IsActive)
			return &schema.App{ID: 9, AppID: input.AppID, Name: input.Name, IsActive: true}, nil
		})

	w := perform(router, http.MethodPost, "/v1/apps", gin.H{"name": "storefront"})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp rest.AppResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(9), resp.ID)
	assert.Equal(t, "storefront", resp.Name)
}

func TestCreateApp_MissingName(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodPost, "/v1/apps", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateWebhook(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		CreateWebhook(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input store.CreateWebhookInput) (*schema.Webhook, error) {
			assert.NotEmpty(t, input.WebhookID)
			assert.Equal(t, uint64(9), input.AppID)
			assert.Equal(t, []domain.EventType{domain.EventTypeOrderCreated}, input.Events)
			assert.Equal(t, "s3cret", input.SecretKey)
			assert.True(t, input.IsActive)
			row := sampleWebhookRow()
			row.WebhookID = input.WebhookID
			return row, nil
		})

	w := perform(router, http.MethodPost, "/v1/webhooks", gin.H{
		"app_id":     9,
		"name":       "orders",
		"target_url": "https://receiver.example.com/hook",
		"secret_key": "s3cret",
		"events":     []string{"order_created"},
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp rest.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, []string{"order_created"}, resp.Events)
	// The secret is write-only
	assert.NotContains(t, w.Body.String(), "s3cret")
}

func TestCreateWebhook_UnknownEventType(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodPost, "/v1/webhooks", gin.H{
		"app_id":     9,
		"target_url": "https://receiver.example.com/hook",
		"events":     []string{"order_exploded"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateWebhook_UnsupportedScheme(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodPost, "/v1/webhooks", gin.H{
		"app_id":     9,
		"target_url": "ftp://receiver.example.com/hook",
		"events":     []string{"order_created"},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestGetWebhook(t *testing.T) {
	router, mocks := newTestRouter(t)
	row := sampleWebhookRow()

	mocks.store.EXPECT().
		GetWebhookByID(gomock.Any(), row.WebhookID).
		Return(row, nil)

	w := perform(router, http.MethodGet, "/v1/webhooks/"+row.WebhookID, nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp rest.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, row.WebhookID, resp.WebhookID)
	assert.Equal(t, row.TargetURL, resp.TargetURL)
}

func TestGetWebhook_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		GetWebhookByID(gomock.Any(), "missing").
		Return(nil, nil)

	w := perform(router, http.MethodGet, "/v1/webhooks/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateWebhook(t *testing.T) {
	router, mocks := newTestRouter(t)
	row := sampleWebhookRow()

	mocks.store.EXPECT().
		UpdateWebhook(gomock.Any(), row.WebhookID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, webhookID string, input store.UpdateWebhookInput) (*schema.Webhook, error) {
			require.NotNil(t, input.IsActive)
			assert.False(t, *input.IsActive)
			assert.Equal(t, []domain.EventType{domain.EventTypeOrderUpdated}, input.Events)
			assert.Nil(t, input.TargetURL)
			updated := sampleWebhookRow()
			updated.IsActive = false
			updated.Events = datatypes.JSON([]byte(`["order_updated"]`))
			return updated, nil
		})

	w := perform(router, http.MethodPatch, "/v1/webhooks/"+row.WebhookID, gin.H{
		"is_active": false,
		"events":    []string{"order_updated"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	var resp rest.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.IsActive)
	assert.Equal(t, []string{"order_updated"}, resp.Events)
}

func TestUpdateWebhook_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		UpdateWebhook(gomock.Any(), "missing", gomock.Any()).
		Return(nil, nil)

	w := perform(router, http.MethodPatch, "/v1/webhooks/missing", gin.H{"name": "renamed"})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWebhook(t *testing.T) {
	router, mocks := newTestRouter(t)
	row := sampleWebhookRow()

	mocks.store.EXPECT().
		GetWebhookByID(gomock.Any(), row.WebhookID).
		Return(row, nil)
	mocks.store.EXPECT().
		DeleteWebhook(gomock.Any(), row.WebhookID).
		Return(nil)

	w := perform(router, http.MethodDelete, "/v1/webhooks/"+row.WebhookID, nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteWebhook_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		GetWebhookByID(gomock.Any(), "missing").
		Return(nil, nil)

	w := perform(router, http.MethodDelete, "/v1/webhooks/missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListWebhookDeliveries(t *testing.T) {
	router, mocks := newTestRouter(t)
	row := sampleWebhookRow()

	mocks.store.EXPECT().
		GetWebhookByID(gomock.Any(), row.WebhookID).
		Return(row, nil)
	mocks.store.EXPECT().
		ListDeliveriesForWebhook(gomock.Any(), row.WebhookID, 10).
		Return([]*schema.EventDelivery{
			{ID: 2, EventType: "order_created", Status: schema.EventDeliveryStatusSuccess, WebhookID: row.ID},
			{ID: 1, EventType: "order_created", Status: schema.EventDeliveryStatusFailed, WebhookID: row.ID},
		}, nil)

	w := perform(router, http.MethodGet, "/v1/webhooks/"+row.WebhookID+"/deliveries?limit=10", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp rest.DeliveryListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, uint64(2), resp.Deliveries[0].ID)
	assert.Equal(t, "success", resp.Deliveries[0].Status)
}

func TestListWebhookDeliveries_InvalidLimit(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/v1/webhooks/abc/deliveries?limit=bogus", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetDelivery(t *testing.T) {
	router, mocks := newTestRouter(t)

	statusCode := 502
	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(&schema.EventDelivery{
			ID:        7,
			EventType: "order_created",
			Status:    schema.EventDeliveryStatusFailed,
			WebhookID: 4,
		}, nil)
	mocks.store.EXPECT().
		ListAttemptsForDelivery(gomock.Any(), uint64(7)).
		Return([]*schema.DeliveryAttempt{
			{ID: 31, DeliveryID: 7, Status: schema.EventDeliveryStatusFailed, ResponseStatusCode: &statusCode, Duration: 0.42},
		}, nil)

	w := perform(router, http.MethodGet, "/v1/deliveries/7", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp rest.DeliveryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	require.Len(t, resp.Attempts, 1)
	assert.Equal(t, &statusCode, resp.Attempts[0].ResponseStatusCode)
}

func TestGetDelivery_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(nil, nil)

	w := perform(router, http.MethodGet, "/v1/deliveries/7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDelivery_InvalidID(t *testing.T) {
	router, _ := newTestRouter(t)

	w := perform(router, http.MethodGet, "/v1/deliveries/seven", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRetryDelivery(t *testing.T) {
	router, mocks := newTestRouter(t)

	payloadID := uint64(12)
	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(&schema.EventDelivery{
			ID:        7,
			Status:    schema.EventDeliveryStatusFailed,
			PayloadID: &payloadID,
		}, nil)
	mocks.store.EXPECT().
		RequeueDelivery(gomock.Any(), uint64(7)).
		Return(nil)
	mocks.scheduler.EXPECT().
		Enqueue(gomock.Any(), uint64(7), time.Duration(0)).
		Return(nil)

	w := perform(router, http.MethodPost, "/v1/deliveries/7/retry", nil)

	require.Equal(t, http.StatusAccepted, w.Code)
	var resp rest.RetryDeliveryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(7), resp.DeliveryID)
	assert.Equal(t, "queued", resp.Status)
}

// A pending delivery is enqueued as-is; only failed ones go back to pending
// first so the later success transition is not rejected by the status guard.
func TestRetryDelivery_PendingSkipsRequeue(t *testing.T) {
	router, mocks := newTestRouter(t)

	payloadID := uint64(12)
	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(&schema.EventDelivery{
			ID:        7,
			Status:    schema.EventDeliveryStatusPending,
			PayloadID: &payloadID,
		}, nil)
	mocks.scheduler.EXPECT().
		Enqueue(gomock.Any(), uint64(7), time.Duration(0)).
		Return(nil)

	w := perform(router, http.MethodPost, "/v1/deliveries/7/retry", nil)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestRetryDelivery_RequeueError(t *testing.T) {
	router, mocks := newTestRouter(t)

	payloadID := uint64(12)
	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(&schema.EventDelivery{
			ID:        7,
			Status:    schema.EventDeliveryStatusFailed,
			PayloadID: &payloadID,
		}, nil)
	mocks.store.EXPECT().
		RequeueDelivery(gomock.Any(), uint64(7)).
		Return(errors.New("db down"))

	w := perform(router, http.MethodPost, "/v1/deliveries/7/retry", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRetryDelivery_AlreadySucceeded(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(&schema.EventDelivery{
			ID:     7,
			Status: schema.EventDeliveryStatusSuccess,
		}, nil)

	w := perform(router, http.MethodPost, "/v1/deliveries/7/retry", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRetryDelivery_PayloadGone(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.store.EXPECT().
		GetDeliveryByID(gomock.Any(), uint64(7)).
		Return(&schema.EventDelivery{
			ID:     7,
			Status: schema.EventDeliveryStatusFailed,
		}, nil)

	w := perform(router, http.MethodPost, "/v1/deliveries/7/retry", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}
