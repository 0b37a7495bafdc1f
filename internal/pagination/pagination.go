package pagination

import (
	"net/url"
	"strconv"
)

const (
	MinPage        = 1
	MaxPerPage     = 100
	DefaultPerPage = 20
)

// Paginate is a 1-based page request.
type Paginate struct {
	Page    int
	PerPage int
}

func (p Paginate) Offset() int {
	return (p.Page - 1) * p.PerPage
}

func (p Paginate) Limit() int {
	return p.PerPage
}

// MakeFrom reads `page` and `per_page` from a query string. Unparseable
// values fall back to the defaults; per_page is clamped to [1, MaxPerPage].
func MakeFrom(values url.Values, defaultPerPage int) Paginate {
	if defaultPerPage < 1 || defaultPerPage > MaxPerPage {
		defaultPerPage = DefaultPerPage
	}

	page := MinPage
	perPage := defaultPerPage

	if raw := values.Get("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	if raw := values.Get("per_page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			perPage = n
		}
	}

	if page < MinPage {
		page = MinPage
	}
	if perPage < 1 {
		perPage = 1
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Paginate{Page: page, PerPage: perPage}
}
