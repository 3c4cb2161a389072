// internal/app/features/programs/reorder.go
package programs

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	programstore "github.com/aspirechess/aspirehub/internal/app/store/programs"
	"github.com/aspirechess/aspirehub/internal/app/system/httpapi"
	"github.com/aspirechess/aspirehub/internal/app/system/timeouts"
)

// Reorder rewrites display positions from an ordered id list: each
// program gets its index in the list as its display_order. Ids are all
// parsed up front so a malformed one rejects the whole request before
// any write happens. An id that parses but matches nothing is skipped;
// the remaining positions still land, which is fine since the dashboard
// reloads the list afterward anyway.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	var payload reorderPayload
	if !decodeJSON(w, r, &payload) {
		return
	}
	if payload.ProgramIDs == nil {
		httpapi.BadRequest(w, "Program IDs must be an array")
		return
	}

	ids := make([]primitive.ObjectID, len(*payload.ProgramIDs))
	for i, raw := range *payload.ProgramIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			httpapi.BadRequest(w, "Invalid program ID")
			return
		}
		ids[i] = id
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := programstore.New(h.DB)
	for i, id := range ids {
		if _, err := store.SetDisplayOrder(ctx, id, i); err != nil {
			h.Log.Error("reorder programs", zap.String("id", id.Hex()), zap.Error(err))
			httpapi.ServerError(w, "Server error while reordering programs")
			return
		}
	}

	httpapi.OKMessage(w, "Programs reordered successfully", nil)
}
