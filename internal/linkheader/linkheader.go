// Package linkheader builds RFC 8288 Link headers for paginated responses.
//
// A pagination strategy exposes its navigation targets through Source (and
// BoundedSource when it can compute a first and last page). The builder
// consults those accessors in a fixed order and serializes the present links
// into a single header value.
package linkheader

import (
	"fmt"
	"net/http"
	"strings"
)

// HeaderName is the response header carrying pagination links
const HeaderName = "Link"

// Relation identifies the navigational role of a link
type Relation string

// Relation labels emitted by the builder
const (
	Prev  Relation = "prev"
	Next  Relation = "next"
	First Relation = "first"
	Last  Relation = "last"
)

// Link is a target URL paired with its relation
type Link struct {
	URL string
	Rel Relation
}

// String formats the link as `<url>; rel="label"`
func (l Link) String() string {
	return fmt.Sprintf("<%s>; rel=\"%s\"", l.URL, l.Rel)
}

// Source is implemented by every pagination strategy.
// An empty string means the relation does not apply to the current page.
type Source interface {
	PreviousLink() string
	NextLink() string
}

// BoundedSource is implemented by strategies that know where the collection
// starts and ends. Cursor strategies do not implement it.
type BoundedSource interface {
	Source
	FirstLink() string
	LastLink() string
}

// Collect returns the present links in prev, next, first, last order
func Collect(src Source) []Link {
	if src == nil {
		return nil
	}

	candidates := []Link{
		{URL: src.PreviousLink(), Rel: Prev},
		{URL: src.NextLink(), Rel: Next},
	}

	if bounded, ok := src.(BoundedSource); ok {
		candidates = append(candidates,
			Link{URL: bounded.FirstLink(), Rel: First},
			Link{URL: bounded.LastLink(), Rel: Last},
		)
	}

	links := make([]Link, 0, len(candidates))
	for _, link := range candidates {
		if link.URL == "" {
			continue
		}
		links = append(links, link)
	}

	return links
}

// Format joins links into a single header value
func Format(links []Link) string {
	parts := make([]string, 0, len(links))
	for _, link := range links {
		parts = append(parts, link.String())
	}
	return strings.Join(parts, ", ")
}

// Value returns the Link header value for src, or "" when no link applies
func Value(src Source) string {
	return Format(Collect(src))
}

// Headers returns the header mapping for src. The mapping is empty when the
// page has no neighbours.
func Headers(src Source) http.Header {
	h := http.Header{}
	Set(h, src)
	return h
}

// Set writes the Link header for src into h, removing a stale value when no
// link applies.
func Set(h http.Header, src Source) {
	value := Value(src)
	if value == "" {
		h.Del(HeaderName)
		return
	}
	h.Set(HeaderName, value)
}
