// internal/app/features/programs/routes.go
package programs

import (
	"github.com/go-chi/chi/v5"

	"github.com/aspirechess/aspirehub/internal/app/system/auth"
)

// Routes mounts the program API. Reads are public; every write and the
// admin listing sit behind the bearer-token admin gate.
func Routes(h *Handler, v *auth.Verifier) chi.Router {
	r := chi.NewRouter()

	// Public reads
	r.Get("/", h.ListPublic)
	r.Get("/{id}", h.Get)

	// Admin surface
	r.Group(func(r chi.Router) {
		r.Use(v.RequireAuth)
		r.Use(auth.RequireAdmin)

		r.Get("/admin", h.ListAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}/toggle-status", h.ToggleStatus)
		r.Patch("/reorder", h.Reorder)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
