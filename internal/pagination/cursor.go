package pagination

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Defaults of the cursor strategy
const (
	DefaultCursorParam  = "cursor"
	DefaultOffsetCutoff = 1000
)

// Ordering is the single field a cursor pagination sorts on
type Ordering struct {
	Field      string
	Descending bool
}

// ParseOrdering parses "field" or "-field"
func ParseOrdering(s string) Ordering {
	if strings.HasPrefix(s, "-") {
		return Ordering{Field: s[1:], Descending: true}
	}
	return Ordering{Field: s}
}

// String returns the ordering in "-field" notation
func (o Ordering) String() string {
	if o.Descending {
		return "-" + o.Field
	}
	return o.Field
}

// Cursor paginates with opaque ?cursor= tokens. It never knows the total
// number of items, so its pages only link to their neighbours.
type Cursor struct {
	PageSize    int
	MaxPageSize int
	// OffsetCutoff caps the offset a client can smuggle into a token
	OffsetCutoff int

	CursorQueryParam   string
	PageSizeQueryParam string

	Ordering Ordering
}

// NewCursor returns a cursor strategy ordered by ordering ("id" or "-id")
func NewCursor(pageSize, maxPageSize int, ordering string) Cursor {
	return Cursor{
		PageSize:           pageSize,
		MaxPageSize:        maxPageSize,
		OffsetCutoff:       DefaultOffsetCutoff,
		CursorQueryParam:   DefaultCursorParam,
		PageSizeQueryParam: DefaultPageSizeParam,
		Ordering:           ParseOrdering(ordering),
	}
}

func (p Cursor) withDefaults() Cursor {
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.OffsetCutoff <= 0 {
		p.OffsetCutoff = DefaultOffsetCutoff
	}
	if p.CursorQueryParam == "" {
		p.CursorQueryParam = DefaultCursorParam
	}
	return p
}

// cursorToken is the decoded form of a cursor.
// A nil position means "from the start of the ordering".
type cursorToken struct {
	offset   int
	reverse  bool
	position *string
}

// decode reads the cursor from the request; no cursor is the zero token
func (p Cursor) decode(r *http.Request) (cursorToken, error) {
	encoded := r.URL.Query().Get(p.CursorQueryParam)
	if encoded == "" {
		return cursorToken{}, nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return cursorToken{}, ErrInvalidCursor
	}

	values, err := url.ParseQuery(string(raw))
	if err != nil {
		return cursorToken{}, ErrInvalidCursor
	}

	var tok cursorToken

	if o, ok := values["o"]; ok && len(o) > 0 {
		offset, err := positiveInt(o[0], false, p.OffsetCutoff)
		if err != nil {
			return cursorToken{}, ErrInvalidCursor
		}
		tok.offset = offset
	}

	if rv, ok := values["r"]; ok && len(rv) > 0 {
		n, err := strconv.Atoi(rv[0])
		if err != nil {
			return cursorToken{}, ErrInvalidCursor
		}
		tok.reverse = n != 0
	}

	if pos, ok := values["p"]; ok && len(pos) > 0 {
		position := pos[0]
		tok.position = &position
	}

	return tok, nil
}

// encodeCursor renders tok into base's cursor parameter
func encodeCursor(base, param string, tok cursorToken) string {
	var parts []string
	if tok.offset != 0 {
		parts = append(parts, "o="+strconv.Itoa(tok.offset))
	}
	if tok.reverse {
		parts = append(parts, "r=1")
	}
	if tok.position != nil {
		parts = append(parts, "p="+url.QueryEscape(*tok.position))
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(strings.Join(parts, "&")))
	return ReplaceQueryParam(base, param, encoded)
}

// PaginateCursor reads the page addressed by the request's cursor from src
func PaginateCursor[T any](ctx context.Context, r *http.Request, p Cursor, src KeysetSource[T]) ([]T, *CursorPage, error) {
	p = p.withDefaults()
	size := pageSizeParam(r, p.PageSizeQueryParam, p.PageSize, p.MaxPageSize)

	tok, err := p.decode(r)
	if err != nil {
		return nil, nil, err
	}

	// Reverse cursors walk the ordering backwards from their position
	q := KeysetQuery{
		Descending: p.Ordering.Descending != tok.reverse,
		Offset:     tok.offset,
		Limit:      size + 1,
	}
	if tok.position != nil {
		q.Position = tok.position
		q.Before = tok.reverse != p.Ordering.Descending
	}

	results, err := src.Fetch(ctx, q)
	if err != nil {
		return nil, nil, err
	}

	items := results
	if len(items) > size {
		items = items[:size]
	}

	// One extra row tells us whether anything follows this page
	hasFollowing := len(results) > len(items)
	var following *string
	if hasFollowing {
		pos := src.Position(results[len(results)-1])
		following = &pos
	}

	page := &CursorPage{
		Size:  size,
		token: tok,
		url:   AbsoluteURL(r),
		param: p.CursorQueryParam,
	}

	resumed := tok.position != nil || tok.offset > 0
	if tok.reverse {
		items = slices.Clone(items)
		slices.Reverse(items)

		page.hasNext = resumed
		page.hasPrevious = hasFollowing
		if page.hasNext {
			page.nextPosition = tok.position
		}
		if page.hasPrevious {
			page.previousPosition = following
		}
	} else {
		page.hasNext = hasFollowing
		page.hasPrevious = resumed
		if page.hasNext {
			page.nextPosition = following
		}
		if page.hasPrevious {
			page.previousPosition = tok.position
		}
	}

	page.positions = make([]string, len(items))
	for i, item := range items {
		page.positions[i] = src.Position(item)
	}

	return items, page, nil
}

// CursorPage is one page of a cursor pagination.
// It implements linkheader.Source only: no first or last link.
type CursorPage struct {
	Size int

	token            cursorToken
	positions        []string
	hasNext          bool
	hasPrevious      bool
	nextPosition     *string
	previousPosition *string

	url   string
	param string
}

func (p *CursorPage) HasNext() bool     { return p.hasNext }
func (p *CursorPage) HasPrevious() bool { return p.hasPrevious }

// NextLink implements linkheader.Source.
//
// The marker is the last item whose position differs from the item after
// it; the offset counts the items sharing the trailing position.
func (p *CursorPage) NextLink() string {
	if !p.hasNext {
		return ""
	}

	n := len(p.positions)

	compare := p.nextPosition
	if n > 0 && p.token.reverse && p.token.offset > 0 {
		// Changing direction: the stored position is not a usable marker
		compare = &p.positions[n-1]
	}

	offset := 0
	var position *string
	unique := false
	for i := n - 1; i >= 0; i-- {
		pos := p.positions[i]
		if compare == nil || pos != *compare {
			unique = true
			position = &pos
			break
		}
		compare = &pos
		offset++
	}

	if n > 0 && !unique {
		switch {
		case !p.hasPrevious:
			offset = p.Size
			position = nil
		case p.token.reverse:
			offset = 0
			position = p.previousPosition
		default:
			offset = p.token.offset + p.Size
			position = p.previousPosition
		}
	}

	if n == 0 {
		position = p.nextPosition
	}

	return encodeCursor(p.url, p.param, cursorToken{offset: offset, reverse: false, position: position})
}

// PreviousLink implements linkheader.Source. It mirrors NextLink from the
// front of the page.
func (p *CursorPage) PreviousLink() string {
	if !p.hasPrevious {
		return ""
	}

	n := len(p.positions)

	compare := p.previousPosition
	if n > 0 && !p.token.reverse && p.token.offset > 0 {
		compare = &p.positions[0]
	}

	offset := 0
	var position *string
	unique := false
	for i := 0; i < n; i++ {
		pos := p.positions[i]
		if compare == nil || pos != *compare {
			unique = true
			position = &pos
			break
		}
		compare = &pos
		offset++
	}

	if n > 0 && !unique {
		switch {
		case !p.hasNext:
			offset = p.Size
			position = nil
		case p.token.reverse:
			offset = p.token.offset + p.Size
			position = p.nextPosition
		default:
			offset = 0
			position = p.nextPosition
		}
	}

	if n == 0 {
		position = p.previousPosition
	}

	return encodeCursor(p.url, p.param, cursorToken{offset: offset, reverse: true, position: position})
}

// String describes the cursor strategy for logs
func (p Cursor) String() string {
	return fmt.Sprintf("cursor(ordering=%s, page_size=%d)", p.Ordering, p.PageSize)
}
