// internal/app/features/workspaces/projects.go
package workspaces

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// ServeProjects handles GET /api/workspaces/{id}/projects.
//
// Membership-gated list of the workspace's non-archived projects.
func (h *Handler) ServeProjects(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanView(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this workspace")
		return
	}

	store := projectstore.New(h.DB)
	list, err := store.ListForWorkspace(ctx, ws.ID)
	if err != nil {
		h.Log.Error("list projects failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if list == nil {
		list = []models.Project{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
