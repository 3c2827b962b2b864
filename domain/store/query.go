// Package store provides the query vocabulary shared by all domain stores.
//
// Stores accept a variadic list of Options; the persistence layer builds a
// Query from them and translates it into SQL. Domain packages define typed
// option constructors (WithProjectID, WithUsername, ...) on top of the
// generic ones here so call sites never mention column names.
package store

import "fmt"

// Option applies a modification to a Query.
type Option func(Query) Query

// Query holds conditions, ordering, and pagination for store lookups.
type Query struct {
	conditions []Condition
	orders     []Order
	limit      int
}

// Build creates a Query from a set of options.
func Build(options ...Option) Query {
	q := Query{}
	for _, opt := range options {
		q = opt(q)
	}
	return q
}

// Conditions returns the query conditions.
func (q Query) Conditions() []Condition {
	result := make([]Condition, len(q.conditions))
	copy(result, q.conditions)
	return result
}

// Orders returns the query ordering specifications.
func (q Query) Orders() []Order {
	result := make([]Order, len(q.orders))
	copy(result, q.orders)
	return result
}

// LimitValue returns the limit (0 means no limit).
func (q Query) LimitValue() int {
	return q.limit
}

// ConditionKind distinguishes the supported WHERE clause shapes.
type ConditionKind int

// ConditionKind values.
const (
	KindEqual ConditionKind = iota
	KindIn
	KindIsNull
	KindIsNotNull
)

// Condition represents a single query condition.
type Condition struct {
	field string
	value any
	kind  ConditionKind
}

// Field returns the condition field name.
func (c Condition) Field() string { return c.field }

// Value returns the condition value.
func (c Condition) Value() any { return c.value }

// Kind returns the condition kind.
func (c Condition) Kind() ConditionKind { return c.kind }

// String returns a readable representation.
func (c Condition) String() string {
	switch c.kind {
	case KindIn:
		return fmt.Sprintf("%s IN %v", c.field, c.value)
	case KindIsNull:
		return c.field + " IS NULL"
	case KindIsNotNull:
		return c.field + " IS NOT NULL"
	default:
		return fmt.Sprintf("%s = %v", c.field, c.value)
	}
}

// Order represents a sort specification.
type Order struct {
	field     string
	ascending bool
}

// Field returns the order field name.
func (o Order) Field() string { return o.field }

// Ascending returns true for ASC, false for DESC.
func (o Order) Ascending() bool { return o.ascending }
