package pagination

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// AbsoluteURL rebuilds the full URL the client requested
func AbsoluteURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// ReplaceQueryParam sets key to val in rawURL's query string.
// The query is re-encoded with keys in sorted order.
func ReplaceQueryParam(rawURL, key, val string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	q.Set(key, val)
	u.RawQuery = q.Encode()

	return u.String()
}

// RemoveQueryParam drops key from rawURL's query string
func RemoveQueryParam(rawURL, key string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	q := u.Query()
	q.Del(key)
	u.RawQuery = q.Encode()

	return u.String()
}

var errNotPositive = errors.New("not a positive integer")

// positiveInt parses a non-negative integer (strictly positive when strict)
// and caps it at cutoff when cutoff > 0.
func positiveInt(s string, strict bool, cutoff int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if n < 0 || (n == 0 && strict) {
		return 0, errNotPositive
	}
	if cutoff > 0 && n > cutoff {
		return cutoff, nil
	}
	return n, nil
}

// pageSizeParam reads an optional page size override from the query string.
// Invalid values fall back to def.
func pageSizeParam(r *http.Request, param string, def, max int) int {
	if param == "" {
		return def
	}

	raw, ok := r.URL.Query()[param]
	if !ok || len(raw) == 0 {
		return def
	}

	size, err := positiveInt(raw[0], true, max)
	if err != nil {
		return def
	}
	return size
}
