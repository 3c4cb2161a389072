// internal/app/features/tournaments/list.go
package tournaments

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"

	tournamentstore "github.com/aspirechess/aspirehub/internal/app/store/tournaments"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/paging"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
	"github.com/aspirechess/aspirehub/internal/domain/models"
)

// ListPublic returns active tournaments soonest-first. Past tournaments
// whose listing window (listUntil) has lapsed are filtered out; the site
// splits the remainder into upcoming and recent results.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := tournamentstore.New(h.DB).FindActive(ctx)
	if err != nil {
		h.Log.Error("list active tournaments", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching tournaments")
		return
	}

	now := time.Now().UTC()
	visible := make([]models.Tournament, 0, len(list))
	for _, t := range list {
		if t.ListUntil != nil && t.ListUntil.Before(now) {
			continue
		}
		visible = append(visible, t)
	}

	httpapi.List(w, len(visible), visible)
}

// ListAdmin returns one dashboard page of tournaments, searchable by
// name or location and filterable by status.
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	pg := paging.Parse(r)
	filter := tournamentstore.AdminFilter(query.Get(r, "search"), query.Get(r, "status"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := tournamentstore.New(h.DB)

	total, err := store.Count(ctx, filter)
	if err != nil {
		h.Log.Error("count tournaments", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching tournaments")
		return
	}

	list, err := store.FindPage(ctx, filter, pg.Skip(), int64(pg.Limit))
	if err != nil {
		h.Log.Error("list tournaments", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching tournaments")
		return
	}

	httpapi.Page(w, len(list), total, pg.TotalPages(total), pg.Page, list)
}
