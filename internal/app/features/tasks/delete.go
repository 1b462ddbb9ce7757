// internal/app/features/tasks/delete.go
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
)

// HandleDelete handles DELETE /api/tasks/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	task, _, ws := h.loadTask(ctx, w, r)
	if task == nil {
		return
	}
	if !wsauth.CanContribute(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to delete this task")
		return
	}

	if err := taskstore.New(h.DB).Delete(ctx, task.ID); err != nil {
		h.Log.Error("delete task failed", zap.Error(err), zap.String("task_id", task.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.TaskDeleted(ctx, user.ID, task.ID, task.Title)
	httpjson.Write(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
