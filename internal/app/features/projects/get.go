// internal/app/features/projects/get.go
package projects

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// ServeGet handles GET /api/projects/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user := sysauth.CurrentUser(r)
	proj, ws := h.loadProject(ctx, w, r)
	if proj == nil {
		return
	}
	if !wsauth.CanView(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this workspace")
		return
	}
	httpjson.Write(w, http.StatusOK, proj)
}

// ServeTasks handles GET /api/projects/{id}/tasks.
func (h *Handler) ServeTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	proj, ws := h.loadProject(ctx, w, r)
	if proj == nil {
		return
	}
	if !wsauth.CanView(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this workspace")
		return
	}

	list, err := taskstore.New(h.DB).ListForProject(ctx, proj.ID)
	if err != nil {
		h.Log.Error("list tasks failed", zap.Error(err), zap.String("project_id", proj.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if list == nil {
		list = []models.Task{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
