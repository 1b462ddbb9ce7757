// internal/app/features/tasks/helpers.go
package tasks

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// loadTask parses the {id} URL param and loads the task with its parent
// project and workspace. On failure it writes the error response and
// returns nils.
func (h *Handler) loadTask(ctx context.Context, w http.ResponseWriter, r *http.Request) (*models.Task, *models.Project, *models.Workspace) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid task id")
		return nil, nil, nil
	}

	task, err := taskstore.New(h.DB).GetByID(ctx, id)
	if err != nil {
		if err == taskstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Task not found")
			return nil, nil, nil
		}
		h.Log.Error("load task failed", zap.Error(err), zap.String("task_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return nil, nil, nil
	}

	proj, err := projectstore.New(h.DB).GetByID(ctx, task.ProjectID)
	if err != nil {
		if err == projectstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Project not found")
			return nil, nil, nil
		}
		h.Log.Error("load parent project failed", zap.Error(err), zap.String("task_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return nil, nil, nil
	}

	ws, err := workspacestore.New(h.DB).GetByID(ctx, proj.WorkspaceID)
	if err != nil {
		if err == workspacestore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Workspace not found")
			return nil, nil, nil
		}
		h.Log.Error("load parent workspace failed", zap.Error(err), zap.String("task_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return nil, nil, nil
	}
	return task, proj, ws
}
