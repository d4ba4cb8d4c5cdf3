package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/event-delivery/internal/domain"
)

func TestObjectTypeFor(t *testing.T) {
	name, err := ObjectTypeFor(domain.EventTypeOrderCreated)
	require.NoError(t, err)
	assert.Equal(t, "OrderCreated", name)

	name, err = ObjectTypeFor(domain.EventTypeCheckoutFilterShippingMethods)
	require.NoError(t, err)
	assert.Equal(t, "CheckoutFilterShippingMethods", name)

	_, err = ObjectTypeFor(domain.EventTypeAny)
	assert.ErrorIs(t, err, domain.ErrEventNotSubscribable)

	_, err = ObjectTypeFor(domain.EventTypeNotifyUser)
	assert.ErrorIs(t, err, domain.ErrEventNotSubscribable)

	_, err = ObjectTypeFor(domain.EventType("no_such_event"))
	assert.ErrorIs(t, err, domain.ErrEventNotSubscribable)
}

func TestParseRejectsMalformedQueries(t *testing.T) {
	_, err := Parse("subscription { event {")
	assert.Error(t, err)

	// Not a subscription
	_, err = Parse("query { event { issuedAt } }")
	assert.ErrorContains(t, err, "subscription operation")

	// No event field
	_, err = Parse("subscription { something { id } }")
	assert.ErrorContains(t, err, "event field")

	// More than one operation
	_, err = Parse("subscription A { event { issuedAt } } subscription B { event { issuedAt } }")
	assert.ErrorContains(t, err, "exactly one operation")
}

func TestProjectInlineFragment(t *testing.T) {
	q, err := Parse(`
		subscription {
			event {
				issuedAt
				... on OrderCreated {
					order {
						id
						number
						lines { quantity }
					}
				}
			}
		}`)
	require.NoError(t, err)

	document := map[string]interface{}{
		"issuedAt": "2024-01-01T00:00:00Z",
		"version":  "3.20",
		"order": map[string]interface{}{
			"id":     "T3JkZXI6MQ==",
			"number": "1",
			"total":  "100.00",
			"lines": []interface{}{
				map[string]interface{}{"quantity": float64(2), "sku": "A"},
				map[string]interface{}{"quantity": float64(1), "sku": "B"},
			},
		},
	}

	result, err := q.Project(domain.EventTypeOrderCreated, document)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "2024-01-01T00:00:00Z", result["issuedAt"])
	assert.NotContains(t, result, "version")

	order, ok := result["order"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "T3JkZXI6MQ==", order["id"])
	assert.Equal(t, "1", order["number"])
	assert.NotContains(t, order, "total")

	lines, ok := order["lines"].([]interface{})
	require.True(t, ok)
	require.Len(t, lines, 2)
	first, ok := lines[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), first["quantity"])
	assert.NotContains(t, first, "sku")
}

func TestProjectNonMatchingFragmentIsEmpty(t *testing.T) {
	q, err := Parse(`
		subscription {
			event {
				... on ProductUpdated {
					product { id }
				}
			}
		}`)
	require.NoError(t, err)

	result, err := q.Project(domain.EventTypeOrderCreated, map[string]interface{}{
		"order": map[string]interface{}{"id": "1"},
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestProjectNamedFragment(t *testing.T) {
	q, err := Parse(`
		fragment OrderPart on OrderCreated {
			order { number }
		}
		subscription {
			event {
				...OrderPart
			}
		}`)
	require.NoError(t, err)

	result, err := q.Project(domain.EventTypeOrderCreated, map[string]interface{}{
		"order": map[string]interface{}{"number": "42"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	order, ok := result["order"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "42", order["number"])
}

func TestProjectUndefinedFragmentSpread(t *testing.T) {
	q, err := Parse(`subscription { event { ...Missing } }`)
	require.NoError(t, err)

	_, err = q.Project(domain.EventTypeOrderCreated, map[string]interface{}{})
	assert.ErrorContains(t, err, "undefined fragment")
}

func TestProjectAliasAndMissingField(t *testing.T) {
	q, err := Parse(`
		subscription {
			event {
				at: issuedAt
				recipient { id }
			}
		}`)
	require.NoError(t, err)

	result, err := q.Project(domain.EventTypeOrderCreated, map[string]interface{}{
		"issuedAt": "2024-01-01T00:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "2024-01-01T00:00:00Z", result["at"])
	// Missing fields project as explicit nulls
	assert.Contains(t, result, "recipient")
	assert.Nil(t, result["recipient"])
}

func TestProjectNotSubscribableEventType(t *testing.T) {
	q, err := Parse(`subscription { event { issuedAt } }`)
	require.NoError(t, err)

	_, err = q.Project(domain.EventTypeObservability, map[string]interface{}{})
	assert.ErrorIs(t, err, domain.ErrEventNotSubscribable)
}
