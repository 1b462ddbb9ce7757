// internal/app/features/workspaces/update.go
package workspaces

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/htmlsanitize"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
)

// HandleUpdate handles PUT /api/workspaces/{id}.
//
// Owner or admin only. Absent fields are left unchanged.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanManage(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to update this workspace")
		return
	}

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			httpjson.Error(w, http.StatusBadRequest, "Workspace name cannot be empty")
			return
		}
		set["name"] = name
		ws.Name = name
	}
	if req.Description != nil {
		desc := htmlsanitize.Clean(*req.Description)
		set["description"] = desc
		ws.Description = desc
	}
	if req.Color != nil {
		set["color"] = *req.Color
		ws.Color = *req.Color
	}
	if len(set) == 0 {
		httpjson.Write(w, http.StatusOK, ws)
		return
	}

	store := workspacestore.New(h.DB)
	if err := store.Update(ctx, ws.ID, set); err != nil {
		h.Log.Error("update workspace failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.WorkspaceUpdated(ctx, user.ID, ws.ID, ws.Name)
	httpjson.Write(w, http.StatusOK, ws)
}
