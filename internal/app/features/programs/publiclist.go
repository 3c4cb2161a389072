// internal/app/features/programs/publiclist.go
package programs

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// ListPublic returns the active programs in display order. Serves the
// marketing site, so it never exposes inactive records.
func (h *Handler) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := programstore.New(h.DB).FindActive(ctx)
	if err != nil {
		h.Log.Error("list active programs", zap.Error(err))
		httpapi.ServerError(w, "Server error while fetching programs")
		return
	}
	httpapi.List(w, len(list), list)
}
