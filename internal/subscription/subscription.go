// Package subscription executes stored webhook subscription queries against
// subscribable event documents. A subscription query is a GraphQL document
// with a single subscription operation selecting the event field; inline
// fragments on the event discriminate per event type. The package does not
// run a GraphQL server: it parses the document and projects the requested
// field selection over the event's JSON document.
package subscription

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/commercekit/event-delivery/internal/domain"
)

// Query is a parsed and structurally validated subscription document
type Query struct {
	// eventSelection is the selection set of the subscription's event field
	eventSelection ast.SelectionSet
	// fragments are the named fragment definitions of the document
	fragments ast.FragmentDefinitionList
}

// nonSubscribableTypes are event types with no subscribable object document
var nonSubscribableTypes = map[domain.EventType]struct{}{
	domain.EventTypeAny:           {},
	domain.EventTypeNotifyUser:    {},
	domain.EventTypeObservability: {},
}

// ObjectTypeFor maps an event type to the GraphQL object type name its inline
// fragment must name, e.g. order_created -> OrderCreated.
func ObjectTypeFor(eventType domain.EventType) (string, error) {
	if _, ok := nonSubscribableTypes[eventType]; ok || !eventType.IsValid() {
		return "", fmt.Errorf("event type %s: %w", eventType, domain.ErrEventNotSubscribable)
	}

	parts := strings.Split(eventType.String(), "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}

	return b.String(), nil
}

// Parse parses and structurally validates a subscription query
func Parse(query string) (*Query, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: query})
	if err != nil {
		return nil, fmt.Errorf("failed to parse subscription query: %w", err)
	}

	if len(doc.Operations) != 1 {
		return nil, fmt.Errorf("subscription query must define exactly one operation, got %d", len(doc.Operations))
	}

	op := doc.Operations[0]
	if op.Operation != ast.Subscription {
		return nil, fmt.Errorf("subscription query must define a subscription operation, got %s", op.Operation)
	}

	var eventSelection ast.SelectionSet
	for _, sel := range op.SelectionSet {
		field, ok := sel.(*ast.Field)
		if !ok {
			continue
		}
		if field.Name == "event" {
			eventSelection = field.SelectionSet
			break
		}
	}
	if eventSelection == nil {
		return nil, fmt.Errorf("subscription query must select the event field")
	}

	return &Query{
		eventSelection: eventSelection,
		fragments:      doc.Fragments,
	}, nil
}

// Project evaluates the query's event selection for the given event type over
// the event document. Fields selected directly on the event and fields inside
// the inline fragment matching the event type both resolve against document.
// Returns nil when the query carries no selection applicable to the event
// type; callers decide whether an empty projection is fatal.
func (q *Query) Project(eventType domain.EventType, document map[string]interface{}) (map[string]interface{}, error) {
	objectType, err := ObjectTypeFor(eventType)
	if err != nil {
		return nil, err
	}

	result := map[string]interface{}{}
	matched := false
	for _, sel := range q.eventSelection {
		switch node := sel.(type) {
		case *ast.Field:
			projectField(node, document, result)
			matched = true
		case *ast.InlineFragment:
			if node.TypeCondition == objectType || node.TypeCondition == "" || node.TypeCondition == "Event" {
				projectSelection(node.SelectionSet, document, result)
				matched = true
			}
		case *ast.FragmentSpread:
			def := q.fragments.ForName(node.Name)
			if def == nil {
				return nil, fmt.Errorf("subscription query references undefined fragment %s", node.Name)
			}
			if def.TypeCondition == objectType || def.TypeCondition == "Event" {
				projectSelection(def.SelectionSet, document, result)
				matched = true
			}
		}
	}

	if !matched || len(result) == 0 {
		return nil, nil
	}

	return result, nil
}

// projectSelection applies every selection in sel against value into out
func projectSelection(sel ast.SelectionSet, value map[string]interface{}, out map[string]interface{}) {
	for _, s := range sel {
		if field, ok := s.(*ast.Field); ok {
			projectField(field, value, out)
		}
	}
}

// projectField resolves one field from value into out, recursing into the
// field's own selection set for object and list values. Missing keys project
// as explicit nulls, matching GraphQL result shape.
func projectField(field *ast.Field, value map[string]interface{}, out map[string]interface{}) {
	key := field.Name
	if field.Alias != "" {
		key = field.Alias
	}

	child, ok := value[field.Name]
	if !ok || len(field.SelectionSet) == 0 {
		if ok {
			out[key] = child
		} else {
			out[key] = nil
		}
		return
	}

	out[key] = projectValue(field.SelectionSet, child)
}

func projectValue(sel ast.SelectionSet, value interface{}) interface{} {
	switch node := value.(type) {
	case map[string]interface{}:
		out := map[string]interface{}{}
		projectSelection(sel, node, out)
		return out
	case []interface{}:
		items := make([]interface{}, 0, len(node))
		for _, item := range node {
			items = append(items, projectValue(sel, item))
		}
		return items
	default:
		return value
	}
}
