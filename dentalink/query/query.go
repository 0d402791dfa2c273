// Package query builds the JSON filter document the Dentalink API expects in
// its `q` URL parameter. Filters are grouped per field: a field with a single
// filter serializes as an object, a field with several as an array.
//
//	params, err := query.New("fecha").Gte(start).Lte(end).
//		Field("id_estado").Eq(statusID).
//		Parse()
package query

import (
	"fmt"
	"time"

	"dentalink-client/dentalink/exceptions"
	"dentalink-client/internal/pkg/constvars"
)

// Query accumulates filters for the current field. Misuse (adding a filter
// before any field is set) is recorded and reported by Parse, so chains stay
// fluent.
type Query struct {
	fields    map[string][]map[string]string
	lastField string
	err       error
}

// New returns an empty builder, optionally positioned on an initial field.
func New(field ...string) *Query {
	q := &Query{fields: make(map[string][]map[string]string)}
	if len(field) > 0 {
		q.setField(field[0])
	}
	return q
}

func (q *Query) setField(name string) {
	q.lastField = name
	q.fields[name] = nil
}

// Field switches the builder to name. Re-selecting a field that was filtered
// earlier resets its filters.
func (q *Query) Field(name string) *Query {
	if q.lastField == name {
		return q
	}
	q.setField(name)
	return q
}

func (q *Query) add(op string, value any, layout []string) *Query {
	if q.err != nil {
		return q
	}
	if q.lastField == "" {
		q.err = exceptions.ErrQueryFieldNotSet()
		return q
	}

	casted, ok := castValue(value, dateLayout(layout))
	if !ok {
		return q
	}
	q.fields[q.lastField] = append(q.fields[q.lastField], map[string]string{op: casted})
	return q
}

func (q *Query) Eq(value any, layout ...string) *Query {
	return q.add("eq", value, layout)
}

func (q *Query) Neq(value any, layout ...string) *Query {
	return q.add("neq", value, layout)
}

func (q *Query) Gt(value any, layout ...string) *Query {
	return q.add("gt", value, layout)
}

func (q *Query) Gte(value any, layout ...string) *Query {
	return q.add("gte", value, layout)
}

func (q *Query) Lt(value any, layout ...string) *Query {
	return q.add("lt", value, layout)
}

func (q *Query) Lte(value any, layout ...string) *Query {
	return q.add("lte", value, layout)
}

// Lk is the API's "like" operator, used for substring matches on strings.
func (q *Query) Lk(value any, layout ...string) *Query {
	return q.add("lk", value, layout)
}

// Parse returns the filter document. Fields that accumulated no filters are
// dropped; a builder that never saw a field is an error.
func (q *Query) Parse() (map[string]any, error) {
	if q.err != nil {
		return nil, q.err
	}
	if len(q.fields) == 0 {
		return nil, exceptions.ErrQueryNoFieldGiven()
	}

	parsed := make(map[string]any, len(q.fields))
	for field, filters := range q.fields {
		switch len(filters) {
		case 0:
		case 1:
			parsed[field] = filters[0]
		default:
			parsed[field] = filters
		}
	}
	return parsed, nil
}

func dateLayout(layout []string) string {
	if len(layout) > 0 {
		return layout[0]
	}
	return constvars.DateLayout
}

// castValue renders a filter value the way the API expects: dates through the
// given layout, booleans as "1"/"0". Nil values (and nil typed pointers)
// report ok=false so optional filters are omitted entirely.
func castValue(value any, layout string) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case *int:
		if v == nil {
			return "", false
		}
		return fmt.Sprintf("%d", *v), true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case *bool:
		if v == nil {
			return "", false
		}
		return castBool(*v), true
	case *float64:
		if v == nil {
			return "", false
		}
		return fmt.Sprintf("%v", *v), true
	case *time.Time:
		if v == nil {
			return "", false
		}
		return v.Format(layout), true
	case time.Time:
		return v.Format(layout), true
	case bool:
		return castBool(v), true
	case string:
		return v, true
	default:
		return fmt.Sprintf("%v", v), true
	}
}

func castBool(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
