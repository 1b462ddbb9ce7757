// internal/app/features/tasks/routes.go
package tasks

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
)

// Routes mounts all task routes behind the bearer middleware.
func Routes(h *Handler, authMgr *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(authMgr.RequireUser)

	r.Post("/", h.HandleCreate)
	r.Get("/my-tasks", h.ServeMyTasks)
	r.Get("/{id}", h.ServeGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	r.Post("/{id}/watch", h.HandleToggleWatch)

	return r
}
