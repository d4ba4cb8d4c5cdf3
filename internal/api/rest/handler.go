package rest

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/commercekit/event-delivery/internal/delivery"
	"github.com/commercekit/event-delivery/internal/store"
	"github.com/commercekit/event-delivery/internal/store/schema"
)

// defaultDeliveryPageSize bounds how many deliveries a listing returns when
// the caller does not say
const (
	defaultDeliveryPageSize = 50
	maxDeliveryPageSize     = 500
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateApp registers an app that can own webhooks
	// POST /v1/apps
	CreateApp(c *gin.Context)

	// CreateWebhook registers a webhook for an existing app
	// POST /v1/webhooks
	CreateWebhook(c *gin.Context)

	// GetWebhook retrieves a webhook by its UUID
	// GET /v1/webhooks/:id
	GetWebhook(c *gin.Context)

	// UpdateWebhook patches a webhook's mutable fields
	// PATCH /v1/webhooks/:id
	UpdateWebhook(c *gin.Context)

	// DeleteWebhook removes a webhook registration
	// DELETE /v1/webhooks/:id
	DeleteWebhook(c *gin.Context)

	// ListWebhookDeliveries retrieves the most recent deliveries for a webhook
	// GET /v1/webhooks/:id/deliveries?limit=<limit>
	ListWebhookDeliveries(c *gin.Context)

	// GetDelivery retrieves a delivery with its attempt history
	// GET /v1/deliveries/:id
	GetDelivery(c *gin.Context)

	// RetryDelivery re-enqueues a non-successful delivery for immediate sending
	// POST /v1/deliveries/:id/retry
	RetryDelivery(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /healthz
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store     store.Store
	scheduler delivery.Scheduler
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, scheduler delivery.Scheduler) Handler {
	return &handler{
		store:     st,
		scheduler: scheduler,
	}
}

// CreateApp registers an app
func (h *handler) CreateApp(c *gin.Context) {
	var req CreateAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if req.AppID == "" {
		req.AppID = uuid.NewString()
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	app, err := h.store.CreateApp(c.Request.Context(), store.CreateAppInput{
		AppID:    req.AppID,
		Name:     req.Name,
		IsActive: isActive,
	})
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to create app: %w", err), "Failed to create app",
			zap.String("app_id", req.AppID))
		return
	}

	c.JSON(http.StatusCreated, MapAppToDTO(app))
}

// CreateWebhook registers a webhook
func (h *handler) CreateWebhook(c *gin.Context) {
	var req CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	events, err := parseEventTypes(req.Events)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := validateTargetURL(req.TargetURL); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	wh, err := h.store.CreateWebhook(c.Request.Context(), store.CreateWebhookInput{
		WebhookID:         uuid.NewString(),
		AppID:             req.AppID,
		Name:              req.Name,
		TargetURL:         req.TargetURL,
		SecretKey:         req.SecretKey,
		SubscriptionQuery: req.SubscriptionQuery,
		Events:            events,
		IsActive:          isActive,
	})
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to create webhook: %w", err), "Failed to create webhook",
			zap.Uint64("app_id", req.AppID))
		return
	}

	c.JSON(http.StatusCreated, MapWebhookToDTO(wh))
}

// GetWebhook retrieves a webhook by its UUID
func (h *handler) GetWebhook(c *gin.Context) {
	webhookID := c.Param("id")

	wh, err := h.store.GetWebhookByID(c.Request.Context(), webhookID)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to get webhook: %w", err), "Failed to get webhook",
			zap.String("webhook_id", webhookID))
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.JSON(http.StatusOK, MapWebhookToDTO(wh))
}

// UpdateWebhook patches a webhook's mutable fields
func (h *handler) UpdateWebhook(c *gin.Context) {
	webhookID := c.Param("id")

	var req UpdateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	input := store.UpdateWebhookInput{
		Name:              req.Name,
		TargetURL:         req.TargetURL,
		SecretKey:         req.SecretKey,
		SubscriptionQuery: req.SubscriptionQuery,
		IsActive:          req.IsActive,
	}
	if req.Events != nil {
		events, err := parseEventTypes(req.Events)
		if err != nil {
			respondValidationError(c, err.Error())
			return
		}
		input.Events = events
	}
	if req.TargetURL != nil {
		if err := validateTargetURL(*req.TargetURL); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	wh, err := h.store.UpdateWebhook(c.Request.Context(), webhookID, input)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to update webhook: %w", err), "Failed to update webhook",
			zap.String("webhook_id", webhookID))
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	c.JSON(http.StatusOK, MapWebhookToDTO(wh))
}

// DeleteWebhook removes a webhook registration
func (h *handler) DeleteWebhook(c *gin.Context) {
	webhookID := c.Param("id")

	wh, err := h.store.GetWebhookByID(c.Request.Context(), webhookID)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to get webhook: %w", err), "Failed to delete webhook",
			zap.String("webhook_id", webhookID))
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	if err := h.store.DeleteWebhook(c.Request.Context(), webhookID); err != nil {
		respondInternalError(c, fmt.Errorf("failed to delete webhook: %w", err), "Failed to delete webhook",
			zap.String("webhook_id", webhookID))
		return
	}

	c.Status(http.StatusNoContent)
}

// ListWebhookDeliveries retrieves the most recent deliveries for a webhook
func (h *handler) ListWebhookDeliveries(c *gin.Context) {
	webhookID := c.Param("id")

	limit := defaultDeliveryPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondBadRequest(c, "Invalid limit")
			return
		}
		if parsed > maxDeliveryPageSize {
			parsed = maxDeliveryPageSize
		}
		limit = parsed
	}

	wh, err := h.store.GetWebhookByID(c.Request.Context(), webhookID)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to get webhook: %w", err), "Failed to list deliveries",
			zap.String("webhook_id", webhookID))
		return
	}
	if wh == nil {
		respondNotFound(c, "Webhook not found")
		return
	}

	deliveries, err := h.store.ListDeliveriesForWebhook(c.Request.Context(), webhookID, limit)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to list deliveries: %w", err), "Failed to list deliveries",
			zap.String("webhook_id", webhookID))
		return
	}

	resp := DeliveryListResponse{Deliveries: make([]DeliveryResponse, 0, len(deliveries))}
	for _, d := range deliveries {
		resp.Deliveries = append(resp.Deliveries, MapDeliveryToDTO(d, nil))
	}
	resp.Total = len(resp.Deliveries)

	c.JSON(http.StatusOK, resp)
}

// GetDelivery retrieves a delivery with its attempt history
func (h *handler) GetDelivery(c *gin.Context) {
	deliveryID, ok := parseDeliveryID(c)
	if !ok {
		return
	}

	d, err := h.store.GetDeliveryByID(c.Request.Context(), deliveryID)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to get delivery: %w", err), "Failed to get delivery",
			zap.Uint64("delivery_id", deliveryID))
		return
	}
	if d == nil {
		respondNotFound(c, "Delivery not found")
		return
	}

	attempts, err := h.store.ListAttemptsForDelivery(c.Request.Context(), deliveryID)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to list attempts: %w", err), "Failed to get delivery",
			zap.Uint64("delivery_id", deliveryID))
		return
	}

	c.JSON(http.StatusOK, MapDeliveryToDTO(d, attempts))
}

// RetryDelivery re-enqueues a delivery for immediate sending. Successful
// deliveries are final; anything else, including exhausted failures, may be
// retried manually.
func (h *handler) RetryDelivery(c *gin.Context) {
	deliveryID, ok := parseDeliveryID(c)
	if !ok {
		return
	}

	d, err := h.store.GetDeliveryByID(c.Request.Context(), deliveryID)
	if err != nil {
		respondInternalError(c, fmt.Errorf("failed to get delivery: %w", err), "Failed to retry delivery",
			zap.Uint64("delivery_id", deliveryID))
		return
	}
	if d == nil {
		respondNotFound(c, "Delivery not found")
		return
	}
	if d.Status == schema.EventDeliveryStatusSuccess {
		respondConflict(c, "Delivery already succeeded")
		return
	}
	if d.PayloadID == nil {
		respondConflict(c, "Delivery payload no longer available")
		return
	}

	if d.Status == schema.EventDeliveryStatusFailed {
		// A failed delivery must go back to pending first, otherwise the
		// status guard would reject the success transition of the retry
		if err := h.store.RequeueDelivery(c.Request.Context(), deliveryID); err != nil {
			respondInternalError(c, fmt.Errorf("failed to requeue delivery: %w", err), "Failed to retry delivery",
				zap.Uint64("delivery_id", deliveryID))
			return
		}
	}

	if err := h.scheduler.Enqueue(c.Request.Context(), deliveryID, 0); err != nil {
		respondInternalError(c, fmt.Errorf("failed to enqueue delivery: %w", err), "Failed to retry delivery",
			zap.Uint64("delivery_id", deliveryID))
		return
	}

	c.JSON(http.StatusAccepted, RetryDeliveryResponse{
		DeliveryID: deliveryID,
		Status:     "queued",
	})
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// parseDeliveryID reads the numeric :id path parameter, responding with a bad
// request when it is not a positive integer
func parseDeliveryID(c *gin.Context) (uint64, bool) {
	raw := c.Param("id")
	deliveryID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || deliveryID == 0 {
		respondBadRequest(c, "Invalid delivery ID")
		return 0, false
	}
	return deliveryID, true
}
