// Package collection provides generic, functional-style helpers for slices.
//
// The registries use it to turn their keyed maps into ordered listings:
//
//	open := collection.Filter(orders, func(o models.Order) bool { return o.Tables > 0 })
//	collection.SortStableBy(open, func(a, b models.Order) int { return a.EventDate.Compare(b.EventDate) })
package collection

import (
	"cmp"
	"slices"
)

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
// The result is never nil, so callers can tell "no match" from "not loaded".
func Filter[T any](s []T, fn func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// First returns the first element matching fn, or (zero, false).
func First[T any](s []T, fn func(T) bool) (T, bool) {
	for _, v := range s {
		if fn(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Contains reports whether any element of s satisfies fn.
func Contains[T any](s []T, fn func(T) bool) bool {
	_, ok := First(s, fn)
	return ok
}

// SortStableBy sorts s in place with cmpFn, keeping the input order of equal
// elements. Returns s for chaining.
func SortStableBy[T any](s []T, cmpFn func(a, b T) int) []T {
	slices.SortStableFunc(s, cmpFn)
	return s
}

// SortByKey sorts s in place by the ordered key extracted by fn, then by
// tie, which may be nil.
func SortByKey[T any, K cmp.Ordered](s []T, fn func(T) K, tie func(a, b T) int) []T {
	slices.SortStableFunc(s, func(a, b T) int {
		if c := cmp.Compare(fn(a), fn(b)); c != 0 || tie == nil {
			return c
		}
		return tie(a, b)
	})
	return s
}

// Values returns the values of m in unspecified order.
func Values[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// KeyBy turns s into a map using the key produced by fn.
// If two elements produce the same key, the first one wins.
func KeyBy[T any, K comparable](s []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, v := range s {
		k := fn(v)
		if _, seen := out[k]; !seen {
			out[k] = v
		}
	}
	return out
}

// Reduce folds s into a single value using fn, starting with initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	carry := initial
	for _, v := range s {
		carry = fn(carry, v)
	}
	return carry
}
