// internal/app/features/workspaces/routes.go
package workspaces

import (
	"github.com/go-chi/chi/v5"

	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
)

// Routes mounts all workspace routes. Every route requires a signed-in
// user; per-workspace authorization is enforced inside the handlers.
func Routes(h *Handler, authMgr *sysauth.Manager) chi.Router {
	r := chi.NewRouter()

	r.Use(authMgr.RequireUser)

	// LIST and CREATE
	r.Get("/", h.ServeList)
	r.Post("/", h.HandleCreate)

	// Invitation acceptance by signed token (id comes from the token)
	r.Post("/accept-invite-token", h.HandleAcceptInviteToken)

	// Single workspace
	r.Get("/{id}", h.ServeGet)
	r.Get("/{id}/details", h.ServeDetails)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	// Workspace contents
	r.Get("/{id}/projects", h.ServeProjects)
	r.Get("/{id}/stats", h.ServeStats)

	// Membership and invitations
	r.Post("/{id}/invite-member", h.HandleInviteMember)
	r.Post("/{id}/accept-generate-invite", h.HandleAcceptGenerateInvite)
	r.Put("/{id}/members/{memberId}/role", h.HandleUpdateMemberRole)
	r.Delete("/{id}/members/{memberId}", h.HandleRemoveMember)
	r.Put("/{id}/transfer-ownership", h.HandleTransferOwnership)

	return r
}
