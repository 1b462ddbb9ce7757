// internal/app/features/workspaces/helpers.go
package workspaces

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// loadWorkspace parses the {id} URL param and loads the workspace.
// On failure it writes the error response and returns nil.
func (h *Handler) loadWorkspace(ctx context.Context, w http.ResponseWriter, r *http.Request) *models.Workspace {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid workspace id")
		return nil
	}

	store := workspacestore.New(h.DB)
	ws, err := store.GetByID(ctx, id)
	if err != nil {
		if err == workspacestore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Workspace not found")
			return nil
		}
		h.Log.Error("load workspace failed", zap.Error(err), zap.String("workspace_id", id.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return nil
	}
	return ws
}

// urlObjectID parses a named URL param as an ObjectID. On failure it
// writes a 400 and reports false.
func urlObjectID(w http.ResponseWriter, r *http.Request, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, name))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid "+name)
		return primitive.NilObjectID, false
	}
	return id, true
}
