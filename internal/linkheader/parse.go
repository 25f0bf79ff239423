package linkheader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformed is returned when a Link header value cannot be parsed
var ErrMalformed = errors.New("malformed link header")

// Parse splits a Link header value into its links.
// Parameters other than rel are ignored; a link without rel is rejected.
func Parse(value string) ([]Link, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var links []Link
	for value != "" {
		if value[0] != '<' {
			return nil, fmt.Errorf("%w: expected '<' at %q", ErrMalformed, value)
		}

		end := strings.IndexByte(value, '>')
		if end < 0 {
			return nil, fmt.Errorf("%w: unterminated URL", ErrMalformed)
		}
		target := value[1:end]
		value = value[end+1:]

		// Params run until the comma that opens the next link
		params := value
		value = ""
		for i := 0; i < len(params); i++ {
			if params[i] == ',' && strings.HasPrefix(strings.TrimSpace(params[i+1:]), "<") {
				value = strings.TrimSpace(params[i+1:])
				params = params[:i]
				break
			}
		}
		params = strings.TrimRight(params, ", ")

		rel, err := relParam(params)
		if err != nil {
			return nil, err
		}

		links = append(links, Link{URL: target, Rel: Relation(rel)})
	}

	return links, nil
}

// Find returns the URL of the first link with the given relation
func Find(links []Link, rel Relation) (string, bool) {
	for _, link := range links {
		if link.Rel == rel {
			return link.URL, true
		}
	}
	return "", false
}

// relParam extracts the rel parameter from a ";"-separated parameter list
func relParam(params string) (string, error) {
	for _, param := range strings.Split(params, ";") {
		param = strings.TrimSpace(param)
		if param == "" {
			continue
		}

		key, val, ok := strings.Cut(param, "=")
		if !ok {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(key), "rel") {
			continue
		}

		val = strings.Trim(strings.TrimSpace(val), `"`)
		if val == "" {
			return "", fmt.Errorf("%w: empty rel", ErrMalformed)
		}
		return val, nil
	}

	return "", fmt.Errorf("%w: missing rel", ErrMalformed)
}
