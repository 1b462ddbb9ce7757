// internal/app/features/projects/helpers.go
package projects

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// loadProject parses the {id} URL param and loads the project together
// with its parent workspace. On failure it writes the error response
// and returns nils.
func (h *Handler) loadProject(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Project, *models.Workspace) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid project id")
		return nil, nil
	}

	proj, err := projectstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == projectstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Project not found")
			return nil, nil
		}
		h.Log.Error("load project failed", zap.Error(err), zap.String("project_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return nil, nil
	}

	ws, err := workspacestore.New(h.DB).GetByID(ctx, proj.WorkspaceID)
	if err != nil {
		if err == workspacestore.ErrNotFound {
			// Orphaned project, its workspace is gone.
			httpjson.Error(w, http.StatusNotFound, "Workspace not found")
			return nil, nil
		}
		h.Log.Error("load parent workspace failed", zap.Error(err), zap.String("project_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return nil, nil
	}
	return proj, ws
}
