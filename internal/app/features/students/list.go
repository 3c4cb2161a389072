// internal/app/features/students/list.go
package students

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	studentstore "github.com/aspirechess/aspirehub/internal/app/store/students"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/paging"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// ListPublic returns the active students in display order for the
// success-stories section.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := studentstore.New(h.DB).FindActive(ctx)
	if err != nil {
		h.Log.Error("list active students", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching students")
		return
	}
	httpapi.List(w, len(list), list)
}

// ListAdmin returns one dashboard page of students, searchable by name
// or program and filterable by status.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)
	filter := studentstore.AdminFilter(query.Get(r, "search"), query.Get(r, "status"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := studentstore.New(h.DB)

	total, err := store.Count(ctx, filter)
	if err != nil {
		h.Log.Error("count students", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching students")
		return
	}

	list, err := store.FindPage(ctx, filter, pg.Skip(), int64(pg.Limit))
	if err != nil {
		h.Log.Error("list students", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching students")
		return
	}

	httpapi.Page(w, len(list), total, pg.TotalPages(total), pg.Page, list)
}
