// internal/app/features/programs/adminlist.go
package programs

import (
	"context"
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/paging"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// ListAdmin returns one page of programs for the dashboard, with
// optional search over branch/location and a status filter. Inactive
// records are included; this is the management view.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)
	search := query.Get(r, "search")
	status := query.Get(r, "status")

	filter := programstore.AdminFilter(search, status)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := programstore.New(h.DB)

	total, err := store.Count(ctx, filter)
	if err != nil {
		h.Log.Error("count programs", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching programs")
		return
	}

	list, err := store.FindPage(ctx, filter, pg.Skip(), int64(pg.Limit))
	if err != nil {
		h.Log.Error("list programs", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching programs")
		return
	}

	httpapi.Page(w, len(list), total, pg.TotalPages(total), pg.Page, list)
}
