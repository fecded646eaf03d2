package models

import (
	"net/url"
	"strconv"
)

// Page is the DRF-style list envelope used by every collection endpoint.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// PageNumberFromURL extracts the "page" query param of a next/previous link.
// A link without the param is page 1 (DRF omits page=1).
func PageNumberFromURL(raw string) (int, bool) {
	u, err := url.Parse(raw)
	if err != nil {
		return 0, false
	}
	p := u.Query().Get("page")
	if p == "" {
		return 1, true
	}
	n, err := strconv.Atoi(p)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// CurrentPage derives the page number from the next/previous links when
// possible. Callers that track the page themselves should prefer their own
// counter; this is the fallback for responses reached via an opaque link.
func (p Page[T]) CurrentPage() int {
	if p.Next != nil {
		if n, ok := PageNumberFromURL(*p.Next); ok && n > 1 {
			return n - 1
		}
	}
	if p.Previous != nil {
		if n, ok := PageNumberFromURL(*p.Previous); ok {
			return n + 1
		}
	}
	return 1
}
