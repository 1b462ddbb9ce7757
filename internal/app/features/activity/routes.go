// internal/app/features/activity/routes.go
package activity

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
)

// Routes mounts the activity feed routes behind the bearer middleware.
func Routes(h *Handler, authMgr *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(authMgr.RequireUser)

	r.Get("/", h.ServeMine)
	r.Get("/resource/{resourceId}", h.ServeForResource)

	return r
}
