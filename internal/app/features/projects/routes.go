// internal/app/features/projects/routes.go
package projects

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
)

// Routes mounts all project routes behind the bearer middleware.
func Routes(h *Handler, authMgr *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(authMgr.RequireUser)

	r.Post("/", h.HandleCreate)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Get("/{id}/tasks", h.ServeTasks)

	return r
}
