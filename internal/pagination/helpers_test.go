package pagination_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"

	"github.com/Raymond9734/linkpager/internal/pagination"
)

// intRange returns the integers from..to inclusive
func intRange(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// sliceSource serves a fixed slice through pagination.Source
func sliceSource(items []int) pagination.Source[int] {
	return pagination.SourceFuncs[int]{
		CountFunc: func(ctx context.Context) (int64, error) {
			return int64(len(items)), nil
		},
		SliceFunc: func(ctx context.Context, offset, limit int) ([]int, error) {
			end := min(offset+limit, len(items))
			if offset > end {
				return []int{}, nil
			}
			return items[offset:end], nil
		},
	}
}

// record mimics a row ordered by a non-unique "created" column
type record struct {
	Created int
	Value   int
}

func records(created ...int) []record {
	out := make([]record, len(created))
	for i, c := range created {
		out[i] = record{Created: c, Value: c}
	}
	return out
}

// recordSource is an in-memory keyset source over records sorted by Created
type recordSource struct {
	items []record
}

func (s recordSource) Fetch(ctx context.Context, q pagination.KeysetQuery) ([]record, error) {
	filtered := make([]record, 0, len(s.items))
	for _, item := range s.items {
		if q.Position != nil {
			pos, err := strconv.Atoi(*q.Position)
			if err != nil {
				return nil, pagination.ErrInvalidCursor
			}
			if q.Before && item.Created >= pos {
				continue
			}
			if !q.Before && item.Created <= pos {
				continue
			}
		}
		filtered = append(filtered, item)
	}

	if q.Descending {
		filtered = slices.Clone(filtered)
		slices.Reverse(filtered)
	}

	start := min(q.Offset, len(filtered))
	end := min(start+q.Limit, len(filtered))
	return filtered[start:end], nil
}

func (s recordSource) Position(item record) string {
	return strconv.Itoa(item.Created)
}

func values(items []record) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.Value
	}
	return out
}

func newRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}
