package linkheader

import "net/http"

// Mode selects where pagination links are published
type Mode int

const (
	// HeaderOnly publishes links in the Link header and leaves the body as is
	HeaderOnly Mode = iota
	// HeaderAndBody also wraps the body in next/previous/results
	HeaderAndBody
)

// Body is the response envelope used by HeaderAndBody
type Body struct {
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

// Decorate returns the headers and payload for a page of data.
// Errors from the strategy happen before this point; Decorate never fails.
func Decorate(src Source, data any, mode Mode) (http.Header, any) {
	headers := Headers(src)

	if mode != HeaderAndBody {
		return headers, data
	}
	if src == nil {
		return headers, Body{Results: data}
	}

	return headers, Body{
		Next:     optional(src.NextLink()),
		Previous: optional(src.PreviousLink()),
		Results:  data,
	}
}

func optional(url string) *string {
	if url == "" {
		return nil
	}
	return &url
}
