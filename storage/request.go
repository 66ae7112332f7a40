/*
 * Copyright © 2026 SugarRecord Authors, All rights reserved.
 */

package storage

import "sort"

// Request describes a query for entities of type T. A request is
// inert: it carries matching, ordering and limit information that a
// Store interprets when the request is executed. In-memory backends
// evaluate the predicate form; indexed backends compile the key
// condition fields into a native query and then apply the in-memory
// form to the page they read back.
type Request[T Entity] struct {
	predicate func(T) bool
	less      func(a, b T) bool
	limit     int

	// Indexed-backend hints.
	KeyCondition string
	Filter       *string
	Index        *string
	Values       map[string]any
	Ascending    *bool
}

// RequestOption configures a Request.
type RequestOption[T Entity] func(*Request[T])

// NewRequest constructs a request from the given options. A request
// with no options matches every entity in store order.
func NewRequest[T Entity](opts ...RequestOption[T]) *Request[T] {
	r := &Request[T]{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Filtered restricts the request to entities matching pred.
func Filtered[T Entity](pred func(T) bool) RequestOption[T] {
	return func(r *Request[T]) {
		r.predicate = pred
	}
}

// SortedBy orders results by the given less function.
func SortedBy[T Entity](less func(a, b T) bool) RequestOption[T] {
	return func(r *Request[T]) {
		r.less = less
	}
}

// Limited caps the number of results. Zero means no limit.
func Limited[T Entity](n int) RequestOption[T] {
	return func(r *Request[T]) {
		r.limit = n
	}
}

// KeyConditioned sets the key condition expression and its placeholder
// values for indexed backends.
func KeyConditioned[T Entity](expr string, values map[string]any) RequestOption[T] {
	return func(r *Request[T]) {
		r.KeyCondition = expr
		r.Values = values
	}
}

// FilteredBy sets a backend-side filter expression.
func FilteredBy[T Entity](expr string) RequestOption[T] {
	return func(r *Request[T]) {
		r.Filter = &expr
	}
}

// OnIndex targets a secondary index.
func OnIndex[T Entity](name string) RequestOption[T] {
	return func(r *Request[T]) {
		r.Index = &name
	}
}

// Descending reverses the backend traversal order.
func Descending[T Entity]() RequestOption[T] {
	return func(r *Request[T]) {
		asc := false
		r.Ascending = &asc
	}
}

// Matches reports whether the request's predicate accepts e. A request
// without a predicate matches everything.
func (r *Request[T]) Matches(e T) bool {
	if r.predicate == nil {
		return true
	}
	return r.predicate(e)
}

// Limit returns the result cap, zero meaning unlimited.
func (r *Request[T]) Limit() int {
	return r.limit
}

// Apply evaluates the in-memory form of the request against items:
// filter, then sort, then limit. The input slice is not modified.
func (r *Request[T]) Apply(items []T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if r.Matches(it) {
			out = append(out, it)
		}
	}
	if r.less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return r.less(out[i], out[j])
		})
	}
	if r.limit > 0 && len(out) > r.limit {
		out = out[:r.limit]
	}
	return out
}
