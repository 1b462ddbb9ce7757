// internal/app/features/tasks/get.go
package tasks

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

// ServeGet handles GET /api/tasks/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user := sysauth.CurrentUser(r)
	task, _, ws := h.loadTask(ctx, w, r)
	if task == nil {
		return
	}
	if !wsauth.CanView(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this workspace")
		return
	}
	httpjson.Write(w, http.StatusOK, task)
}

// ServeMyTasks handles GET /api/tasks/my-tasks.
//
// All non-archived tasks assigned to the caller, across workspaces.
func (h *Handler) ServeMyTasks(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	list, err := taskstore.New(h.DB).ListAssignedTo(ctx, user.ID)
	if err != nil {
		h.Log.Error("list my tasks failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if list == nil {
		list = []models.Task{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
