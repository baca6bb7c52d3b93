// Package pagination provides a reusable page/limit result windower
// shared by the comment and feed listings.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params is a normalized (page, limit) pair. Use NewParams or
// ParseParams to construct one; the zero value is not normalized.
type Params struct {
	Page  int
	Limit int
}

// NewParams coerces page and limit to positive integers, substituting
// the defaults for zero or negative values.
func NewParams(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// ParseParams builds Params from raw query string values. Absent or
// non-numeric values fall back to the defaults.
func ParseParams(page, limit string) Params {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultPage
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = DefaultLimit
	}
	return NewParams(p, l)
}

// Offset returns the number of items preceding the requested window.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Page is a bounded window of an ordered result set plus total-count
// metadata. It is computed per request and never persisted.
type Page[T any] struct {
	Items      []T `json:"items"`
	PageNumber int `json:"page"`
	PageSize   int `json:"limit"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// Paginate windows the ordered source by the given params. A page past
// the end yields empty items with accurate totals, not an error.
func Paginate[T any](source []T, params Params) Page[T] {
	total := len(source)

	start := params.Offset()
	if start > total {
		start = total
	}
	end := start + params.Limit
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      source[start:end],
		PageNumber: params.Page,
		PageSize:   params.Limit,
		TotalItems: total,
		TotalPages: (total + params.Limit - 1) / params.Limit,
	}
}
