package store

// WithCondition adds a field = value equality condition.
// Domain packages use this to define their own typed options.
func WithCondition(field string, value any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: value, kind: KindEqual})
		return q
	}
}

// WithConditionIn adds a field IN (values) condition.
func WithConditionIn(field string, values any) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, value: values, kind: KindIn})
		return q
	}
}

// WithNull adds a field IS NULL condition.
func WithNull(field string) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, kind: KindIsNull})
		return q
	}
}

// WithNotNull adds a field IS NOT NULL condition.
func WithNotNull(field string) Option {
	return func(q Query) Query {
		q.conditions = append(q.conditions, Condition{field: field, kind: KindIsNotNull})
		return q
	}
}

// WithLimit sets the maximum number of results.
func WithLimit(n int) Option {
	return func(q Query) Query {
		q.limit = n
		return q
	}
}

// WithOrderAsc adds ascending ordering on a field.
func WithOrderAsc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: true})
		return q
	}
}

// WithOrderDesc adds descending ordering on a field.
func WithOrderDesc(field string) Option {
	return func(q Query) Query {
		q.orders = append(q.orders, Order{field: field, ascending: false})
		return q
	}
}
