// internal/app/features/workspaces/delete.go
package workspaces

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	activitystore "github.com/Yashh-Garg/Trackwise/internal/app/store/activity"
	invitestore "github.com/Yashh-Garg/Trackwise/internal/app/store/invites"
	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
)

// HandleDelete handles DELETE /api/workspaces/{id}.
//
// Owner only. Dependent documents (tasks, projects, invites, activity)
// are removed concurrently without a transaction; a failure partway
// leaves already-deleted collections gone and reports 500. The
// workspace document itself goes last so a partial failure keeps the
// workspace visible and the delete retryable.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.IsOwner(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "Only the workspace owner can delete the workspace")
		return
	}

	projects := projectstore.New(h.DB)
	projectIDs, err := projects.IDsForWorkspace(ctx, ws.ID)
	if err != nil {
		h.Log.Error("list project ids failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resourceIDs := make([]primitive.ObjectID, 0, len(projectIDs)+1)
	resourceIDs = append(resourceIDs, projectIDs...)
	resourceIDs = append(resourceIDs, ws.ID)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return taskstore.New(h.DB).DeleteForProjects(gctx, projectIDs)
	})
	g.Go(func() error {
		return invitestore.New(h.DB).DeleteForWorkspace(gctx, ws.ID)
	})
	g.Go(func() error {
		return activitystore.New(h.DB).DeleteForResources(gctx, resourceIDs)
	})
	g.Go(func() error {
		return projects.DeleteForWorkspace(gctx, ws.ID)
	})
	if err := g.Wait(); err != nil {
		h.Log.Error("cascade delete failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	store := workspacestore.New(h.DB)
	if err := store.Delete(ctx, ws.ID); err != nil {
		h.Log.Error("delete workspace failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.Log.Info("workspace deleted",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("owner_id", user.ID.Hex()),
		zap.Int("projects_removed", len(projectIDs)))
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Workspace deleted successfully"})
}
