// internal/app/features/tournaments/routes.go
package tournaments

import (
	"github.com/go-chi/chi/v5"

	"github.com/aspirechess/aspirehub/internal/app/system/auth"
)

// Routes mounts the tournament API. Reads are public; writes and the
// admin listing require an admin bearer token.
func Routes(h *Handler, v *auth.Verifier) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListPublic)
	r.Get("/{id}", h.Get)

	r.Group(func(r chi.Router) {
		r.Use(v.RequireAuth)
		r.Use(auth.RequireAdmin)

		r.Get("/admin", h.ListAdmin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}/toggle-status", h.ToggleStatus)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
