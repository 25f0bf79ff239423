package pagination

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
)

// Default query parameters of the limit/offset strategy
const (
	DefaultLimitParam  = "limit"
	DefaultOffsetParam = "offset"
)

// LimitOffset paginates with ?limit= and ?offset=
type LimitOffset struct {
	DefaultLimit int
	MaxLimit     int

	LimitQueryParam  string
	OffsetQueryParam string
}

// NewLimitOffset returns a limit/offset strategy with the default parameter names
func NewLimitOffset(defaultLimit, maxLimit int) LimitOffset {
	return LimitOffset{
		DefaultLimit:     defaultLimit,
		MaxLimit:         maxLimit,
		LimitQueryParam:  DefaultLimitParam,
		OffsetQueryParam: DefaultOffsetParam,
	}
}

func (p LimitOffset) withDefaults() LimitOffset {
	if p.DefaultLimit <= 0 {
		p.DefaultLimit = DefaultPageSize
	}
	if p.LimitQueryParam == "" {
		p.LimitQueryParam = DefaultLimitParam
	}
	if p.OffsetQueryParam == "" {
		p.OffsetQueryParam = DefaultOffsetParam
	}
	return p
}

// Window resolves limit and offset for a collection of count items
func (p LimitOffset) Window(r *http.Request, count int64) (*OffsetPage, error) {
	p = p.withDefaults()
	limit := pageSizeParam(r, p.LimitQueryParam, p.DefaultLimit, p.MaxLimit)

	offset := 0
	if raw, ok := r.URL.Query()[p.OffsetQueryParam]; ok && len(raw) > 0 {
		n, err := positiveInt(raw[0], false, 0)
		if err != nil {
			return nil, ErrInvalidOffset
		}
		offset = n
	}

	return &OffsetPage{
		Limit:       limit,
		Offset:      offset,
		Count:       count,
		url:         AbsoluteURL(r),
		limitParam:  p.LimitQueryParam,
		offsetParam: p.OffsetQueryParam,
	}, nil
}

// PaginateOffset reads the requested window from src.
// An offset past the end yields an empty page rather than an error.
func PaginateOffset[T any](ctx context.Context, r *http.Request, p LimitOffset, src Source[T]) ([]T, *OffsetPage, error) {
	count, err := src.Count(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to count items: %w", err)
	}

	page, err := p.Window(r, count)
	if err != nil {
		return nil, nil, err
	}

	if count == 0 || int64(page.Offset) > count {
		return []T{}, page, nil
	}

	items, err := src.Slice(ctx, page.Offset, page.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read offset %d: %w", page.Offset, err)
	}

	return items, page, nil
}

// OffsetPage is one window of a limit/offset pagination
type OffsetPage struct {
	Limit  int
	Offset int
	Count  int64

	url         string
	limitParam  string
	offsetParam string
}

// HasNext reports whether items follow the window. An offset at or past the
// end never has a next page, however large it is.
func (p *OffsetPage) HasNext() bool {
	if int64(p.Offset) >= p.Count {
		return false
	}
	return int64(p.Offset)+int64(p.Limit) < p.Count
}

func (p *OffsetPage) HasPrevious() bool { return p.Offset > 0 }

// NextLink implements linkheader.Source
func (p *OffsetPage) NextLink() string {
	if !p.HasNext() {
		return ""
	}
	return ReplaceQueryParam(p.withLimit(), p.offsetParam, strconv.Itoa(p.Offset+p.Limit))
}

// PreviousLink implements linkheader.Source
func (p *OffsetPage) PreviousLink() string {
	if !p.HasPrevious() {
		return ""
	}
	if p.Offset-p.Limit <= 0 {
		return RemoveQueryParam(p.withLimit(), p.offsetParam)
	}
	return ReplaceQueryParam(p.withLimit(), p.offsetParam, strconv.Itoa(p.Offset-p.Limit))
}

// FirstLink implements linkheader.BoundedSource. It is present on every
// page of a collection that spans more than one window. When the whole
// collection fits in one window it is empty, so a single page carries no
// Link header at all even though first is otherwise always advertised.
func (p *OffsetPage) FirstLink() string {
	if !p.HasPrevious() && !p.HasNext() {
		return ""
	}
	return RemoveQueryParam(p.withLimit(), p.offsetParam)
}

// LastLink implements linkheader.BoundedSource.
// The offset is aligned to limit so that a count divisible by limit does not
// produce a trailing empty page.
func (p *OffsetPage) LastLink() string {
	if !p.HasNext() {
		return ""
	}
	return ReplaceQueryParam(p.withLimit(), p.offsetParam, strconv.FormatInt(lastOffset(p.Count, p.Limit), 10))
}

func (p *OffsetPage) withLimit() string {
	return ReplaceQueryParam(p.url, p.limitParam, strconv.Itoa(p.Limit))
}

// lastOffset returns the offset of the final page
func lastOffset(count int64, limit int) int64 {
	l := int64(limit)
	return max(0, count-((count-1)%l)-1)
}
