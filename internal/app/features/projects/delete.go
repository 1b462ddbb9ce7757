// internal/app/features/projects/delete.go
package projects

import (
	"context"
	"net/http"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleDelete handles DELETE /api/projects/{id}.
//
// Workspace owner/admin or the project's manager only. The project's
// tasks go first so a partial failure leaves the project visible and
// the delete retryable.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	user := sysauth.CurrentUser(r)
	proj, ws := h.loadProject(ctx, w, r)
	if proj == nil {
		return
	}
	if !wsauth.CanManage(ws, user.ID) && !isManager(proj, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to delete this project")
		return
	}

	if err := taskstore.New(h.DB).DeleteForProjects(ctx, []primitive.ObjectID{proj.ID}); err != nil {
		h.Log.Error("delete project tasks failed", zap.Error(err), zap.String("project_id", proj.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if err := projectstore.New(h.DB).Delete(ctx, proj.ID); err != nil {
		h.Log.Error("delete project failed", zap.Error(err), zap.String("project_id", proj.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.ProjectDeleted(ctx, user.ID, proj.ID, proj.Title)
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}

func isManager(p *models.Project, userID primitive.ObjectID) bool {
	for _, m := range p.Members {
		if m.User == userID && m.Role == models.ProjectRoleManager {
			return true
		}
	}
	return false
}
