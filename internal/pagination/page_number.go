package pagination

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
)

// Default values shared by the strategies
const (
	DefaultPageSize       = 20
	DefaultPageParam      = "page"
	DefaultPageSizeParam  = "page_size"
	DefaultLastPageString = "last"
)

// PageNumber paginates with a 1-based ?page= parameter
type PageNumber struct {
	PageSize    int
	MaxPageSize int

	PageQueryParam string
	// PageSizeQueryParam lets clients override PageSize; empty disables it
	PageSizeQueryParam string
	// LastPageStrings are page values that select the final page
	LastPageStrings []string
}

// NewPageNumber returns a page-number strategy accepting ?page= and ?page_size=
func NewPageNumber(pageSize, maxPageSize int) PageNumber {
	return PageNumber{
		PageSize:           pageSize,
		MaxPageSize:        maxPageSize,
		PageQueryParam:     DefaultPageParam,
		PageSizeQueryParam: DefaultPageSizeParam,
		LastPageStrings:    []string{DefaultLastPageString},
	}
}

func (p PageNumber) withDefaults() PageNumber {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageQueryParam == "" {
		p.PageQueryParam = DefaultPageParam
	}
	if p.LastPageStrings == nil {
		p.LastPageStrings = []string{DefaultLastPageString}
	}
	return p
}

// Page resolves the requested page against a collection of count items
func (p PageNumber) Page(r *http.Request, count int64) (*NumberedPage, error) {
	p = p.withDefaults()
	size := pageSizeParam(r, p.PageSizeQueryParam, p.PageSize, p.MaxPageSize)

	numPages := countPages(count, size)

	number := 1
	if raw, ok := r.URL.Query()[p.PageQueryParam]; ok && len(raw) > 0 {
		if slices.Contains(p.LastPageStrings, raw[0]) {
			number = numPages
		} else {
			n, err := strconv.Atoi(raw[0])
			if err != nil || n < 1 || n > numPages {
				return nil, ErrInvalidPage
			}
			number = n
		}
	}

	return &NumberedPage{
		Number:   number,
		NumPages: numPages,
		Size:     size,
		Count:    count,
		url:      AbsoluteURL(r),
		param:    p.PageQueryParam,
	}, nil
}

// countPages returns the number of pages; an empty collection has one page
func countPages(count int64, size int) int {
	hits := max(count, 1)
	return int((hits + int64(size) - 1) / int64(size))
}

// PaginatePages reads the requested page from src
func PaginatePages[T any](ctx context.Context, r *http.Request, p PageNumber, src Source[T]) ([]T, *NumberedPage, error) {
	count, err := src.Count(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count items: %w", err)
	}

	page, err := p.Page(r, count)
	if err != nil {
		return nil, nil, err
	}

	items, err := src.Slice(ctx, page.Offset(), page.Limit())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read page %d: %w", page.Number, err)
	}

	return items, page, nil
}

// NumberedPage is one page of a page-number pagination
type NumberedPage struct {
	Number   int
	NumPages int
	Size     int
	Count    int64

	url   string
	param string
}

// Offset returns the index of the first item on the page
func (p *NumberedPage) Offset() int {
	return (p.Number - 1) * p.Size
}

// Limit returns the number of items the page can hold
func (p *NumberedPage) Limit() int {
	return p.Size
}

func (p *NumberedPage) HasNext() bool     { return p.Number < p.NumPages }
func (p *NumberedPage) HasPrevious() bool { return p.Number > 1 }

// NextLink implements linkheader.Source
func (p *NumberedPage) NextLink() string {
	if !p.HasNext() {
		return ""
	}
	return ReplaceQueryParam(p.url, p.param, strconv.Itoa(p.Number+1))
}

// PreviousLink implements linkheader.Source.
// Page 1 is addressed without the page parameter.
func (p *NumberedPage) PreviousLink() string {
	if !p.HasPrevious() {
		return ""
	}
	if p.Number-1 == 1 {
		return RemoveQueryParam(p.url, p.param)
	}
	return ReplaceQueryParam(p.url, p.param, strconv.Itoa(p.Number-1))
}

// FirstLink implements linkheader.BoundedSource
func (p *NumberedPage) FirstLink() string {
	if !p.HasPrevious() {
		return ""
	}
	return RemoveQueryParam(p.url, p.param)
}

// LastLink implements linkheader.BoundedSource
func (p *NumberedPage) LastLink() string {
	if !p.HasNext() {
		return ""
	}
	return ReplaceQueryParam(p.url, p.param, strconv.Itoa(p.NumPages))
}
