package domain

// EventType identifies a domain event a webhook can subscribe to.
// The string values are the wire names carried in delivery headers and
// message attributes, and stored in webhook subscription rows.
type EventType string

// Async event types. Deliveries for these are dispatched fire-and-forget
// through the background delivery workflow with retry.
const (
	// EventTypeAny is a special subscription filter matching every async event
	EventTypeAny EventType = "any_events"

	EventTypeOrderCreated     EventType = "order_created"
	EventTypeOrderConfirmed   EventType = "order_confirmed"
	EventTypeOrderFullyPaid   EventType = "order_fully_paid"
	EventTypeOrderUpdated     EventType = "order_updated"
	EventTypeOrderCancelled   EventType = "order_cancelled"
	EventTypeOrderFulfilled   EventType = "order_fulfilled"
	EventTypeDraftOrderCreated EventType = "draft_order_created"
	EventTypeDraftOrderUpdated EventType = "draft_order_updated"
	EventTypeDraftOrderDeleted EventType = "draft_order_deleted"

	EventTypeCheckoutCreated EventType = "checkout_created"
	EventTypeCheckoutUpdated EventType = "checkout_updated"

	EventTypeCustomerCreated EventType = "customer_created"
	EventTypeCustomerUpdated EventType = "customer_updated"

	EventTypeProductCreated        EventType = "product_created"
	EventTypeProductUpdated        EventType = "product_updated"
	EventTypeProductDeleted        EventType = "product_deleted"
	EventTypeProductVariantCreated EventType = "product_variant_created"
	EventTypeProductVariantUpdated EventType = "product_variant_updated"
	EventTypeProductVariantDeleted EventType = "product_variant_deleted"

	EventTypeFulfillmentCreated  EventType = "fulfillment_created"
	EventTypeFulfillmentCanceled EventType = "fulfillment_canceled"

	EventTypeInvoiceRequested EventType = "invoice_requested"
	EventTypeInvoiceDeleted   EventType = "invoice_deleted"
	EventTypeInvoiceSent      EventType = "invoice_sent"

	EventTypeSaleCreated EventType = "sale_created"
	EventTypeSaleUpdated EventType = "sale_updated"
	EventTypeSaleDeleted EventType = "sale_deleted"

	EventTypePageCreated EventType = "page_created"
	EventTypePageUpdated EventType = "page_updated"
	EventTypePageDeleted EventType = "page_deleted"

	EventTypeNotifyUser EventType = "notify_user"

	// EventTypeObservability marks webhooks receiving internal diagnostic
	// events from the observability flusher
	EventTypeObservability EventType = "observability"
)

// Sync event types. A webhook call for these is awaited in-line within a
// request-serving code path and its response influences that request's
// outcome.
const (
	EventTypePaymentListGateways EventType = "payment_list_gateways"
	EventTypePaymentAuthorize    EventType = "payment_authorize"
	EventTypePaymentCapture      EventType = "payment_capture"
	EventTypePaymentRefund       EventType = "payment_refund"
	EventTypePaymentVoid         EventType = "payment_void"
	EventTypePaymentConfirm      EventType = "payment_confirm"
	EventTypePaymentProcess      EventType = "payment_process"

	EventTypeCheckoutCalculateTaxes EventType = "checkout_calculate_taxes"
	EventTypeOrderCalculateTaxes    EventType = "order_calculate_taxes"

	EventTypeShippingListMethodsForCheckout EventType = "shipping_list_methods_for_checkout"
	EventTypeCheckoutFilterShippingMethods  EventType = "checkout_filter_shipping_methods"
	EventTypeOrderFilterShippingMethods     EventType = "order_filter_shipping_methods"
)

// AsyncEventTypes lists every async event type, in registration order.
var AsyncEventTypes = []EventType{
	EventTypeAny,
	EventTypeOrderCreated,
	EventTypeOrderConfirmed,
	EventTypeOrderFullyPaid,
	EventTypeOrderUpdated,
	EventTypeOrderCancelled,
	EventTypeOrderFulfilled,
	EventTypeDraftOrderCreated,
	EventTypeDraftOrderUpdated,
	EventTypeDraftOrderDeleted,
	EventTypeCheckoutCreated,
	EventTypeCheckoutUpdated,
	EventTypeCustomerCreated,
	EventTypeCustomerUpdated,
	EventTypeProductCreated,
	EventTypeProductUpdated,
	EventTypeProductDeleted,
	EventTypeProductVariantCreated,
	EventTypeProductVariantUpdated,
	EventTypeProductVariantDeleted,
	EventTypeFulfillmentCreated,
	EventTypeFulfillmentCanceled,
	EventTypeInvoiceRequested,
	EventTypeInvoiceDeleted,
	EventTypeInvoiceSent,
	EventTypeSaleCreated,
	EventTypeSaleUpdated,
	EventTypeSaleDeleted,
	EventTypePageCreated,
	EventTypePageUpdated,
	EventTypePageDeleted,
	EventTypeNotifyUser,
	EventTypeObservability,
}

// SyncEventTypes lists every sync event type. Ordering matters only for
// documentation; sync dispatch is driven by webhook registration order.
var SyncEventTypes = []EventType{
	EventTypePaymentListGateways,
	EventTypePaymentAuthorize,
	EventTypePaymentCapture,
	EventTypePaymentRefund,
	EventTypePaymentVoid,
	EventTypePaymentConfirm,
	EventTypePaymentProcess,
	EventTypeCheckoutCalculateTaxes,
	EventTypeOrderCalculateTaxes,
	EventTypeShippingListMethodsForCheckout,
	EventTypeCheckoutFilterShippingMethods,
	EventTypeOrderFilterShippingMethods,
}

var (
	asyncEventTypeSet = makeEventTypeSet(AsyncEventTypes)
	syncEventTypeSet  = makeEventTypeSet(SyncEventTypes)
)

func makeEventTypeSet(types []EventType) map[EventType]struct{} {
	set := make(map[EventType]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}

// IsAsync reports whether t is a known async event type.
func (t EventType) IsAsync() bool {
	_, ok := asyncEventTypeSet[t]
	return ok
}

// IsSync reports whether t is a known sync event type.
func (t EventType) IsSync() bool {
	_, ok := syncEventTypeSet[t]
	return ok
}

// IsValid reports whether t is a known event type of either kind.
func (t EventType) IsValid() bool {
	return t.IsAsync() || t.IsSync()
}

func (t EventType) String() string {
	return string(t)
}
