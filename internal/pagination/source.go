// Package pagination implements the page-number, limit/offset and cursor
// strategies used by list endpoints. Each strategy reads its parameters from
// the request, fetches a window from a data source and returns a page that
// knows its neighbours' URLs.
package pagination

import "context"

// Source is a countable collection that can be read by offset
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// SourceFuncs adapts a pair of functions to Source
type SourceFuncs[T any] struct {
	CountFunc func(ctx context.Context) (int64, error)
	SliceFunc func(ctx context.Context, offset, limit int) ([]T, error)
}

// Count implements Source
func (s SourceFuncs[T]) Count(ctx context.Context) (int64, error) {
	return s.CountFunc(ctx)
}

// Slice implements Source
func (s SourceFuncs[T]) Slice(ctx context.Context, offset, limit int) ([]T, error) {
	return s.SliceFunc(ctx, offset, limit)
}

// KeysetQuery describes one read against an ordered collection.
// When Position is set, rows are filtered to those strictly after it
// (Before=false) or strictly before it (Before=true) on the ordering field.
type KeysetQuery struct {
	Descending bool
	Position   *string
	Before     bool
	Offset     int
	Limit      int
}

// KeysetSource is an ordered collection read by position.
// Position must return the ordering field of item as a string.
type KeysetSource[T any] interface {
	Fetch(ctx context.Context, q KeysetQuery) ([]T, error)
	Position(item T) string
}

// KeysetFuncs adapts a pair of functions to KeysetSource
type KeysetFuncs[T any] struct {
	FetchFunc    func(ctx context.Context, q KeysetQuery) ([]T, error)
	PositionFunc func(item T) string
}

// Fetch implements KeysetSource
func (s KeysetFuncs[T]) Fetch(ctx context.Context, q KeysetQuery) ([]T, error) {
	return s.FetchFunc(ctx, q)
}

// Position implements KeysetSource
func (s KeysetFuncs[T]) Position(item T) string {
	return s.PositionFunc(item)
}
