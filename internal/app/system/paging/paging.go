// internal/app/system/paging/paging.go

// Package paging provides page/limit offset pagination for admin list
// endpoints. The admin UI pages through a bounded dataset, so offset
// paging with a total count is simpler and sufficient here.
package paging

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
)

const (
	// DefaultLimit matches the admin dashboard's page size.
	DefaultLimit = 10

	// MaxLimit caps the per-page row count regardless of what the
	// client asks for.
	MaxLimit = 100
)

// Params holds normalized pagination values for one request.
type Params struct {
	Page  int
	Limit int
}

// Parse reads "page" and "limit" query parameters and normalizes them:
// page >= 1, limit in [1, MaxLimit], defaults applied for missing or
// malformed values.
func Parse(r *http.Request) Params {
	p := Params{Page: 1, Limit: DefaultLimit}

	if s := query.Get(r, "page"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Page = n
		}
	}
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 1 {
			p.Limit = n
		}
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Skip returns the number of documents to skip for the current page.
func (p Params) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// TotalPages returns the page count for total rows at this limit.
func (p Params) TotalPages(total int64) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}
