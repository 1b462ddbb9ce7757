// internal/app/features/tasks/update.go
package tasks

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/htmlsanitize"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
)

// HandleUpdate handles PUT /api/tasks/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	task, _, ws := h.loadTask(ctx, w, r)
	if task == nil {
		return
	}
	if !wsauth.CanContribute(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to update this task")
		return
	}

	var req updateRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			httpjson.Error(w, http.StatusBadRequest, "Task title cannot be empty")
			return
		}
		set["title"] = title
		task.Title = title
	}
	if req.Description != nil {
		desc := htmlsanitize.Clean(*req.Description)
		set["description"] = desc
		task.Description = desc
	}
	if req.Status != nil {
		set["status"] = *req.Status
		task.Status = *req.Status
	}
	if req.Priority != nil {
		set["priority"] = *req.Priority
		task.Priority = *req.Priority
	}
	if req.Assignees != nil {
		assignees := make([]primitive.ObjectID, 0, len(*req.Assignees))
		for _, a := range *req.Assignees {
			uid, err := primitive.ObjectIDFromHex(a)
			if err != nil {
				httpjson.Error(w, http.StatusBadRequest, "Invalid assignee id")
				return
			}
			if !ws.HasMember(uid) {
				httpjson.Error(w, http.StatusBadRequest, "Assignees must be workspace members")
				return
			}
			assignees = append(assignees, uid)
		}
		set["assignees"] = assignees
		task.Assignees = assignees
	}
	if req.DueDate != nil {
		set["due_date"] = *req.DueDate
		task.DueDate = req.DueDate
	}
	if req.IsArchived != nil {
		set["is_archived"] = *req.IsArchived
		task.IsArchived = *req.IsArchived
	}
	if len(set) == 0 {
		httpjson.Write(w, http.StatusOK, task)
		return
	}

	if err := taskstore.New(h.DB).Update(ctx, task.ID, set); err != nil {
		h.Log.Error("update task failed", zap.Error(err), zap.String("task_id", task.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.TaskUpdated(ctx, user.ID, task.ID, task.Title)
	httpjson.Write(w, http.StatusOK, task)
}

// HandleToggleWatch handles POST /api/tasks/{id}/watch.
//
// Adds the caller to the watcher list, or removes them if already
// watching.
func (h *Handler) HandleToggleWatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
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

	var watchers []primitive.ObjectID
	if task.IsWatcher(user.ID) {
		for _, id := range task.Watchers {
			if id != user.ID {
				watchers = append(watchers, id)
			}
		}
		if watchers == nil {
			watchers = []primitive.ObjectID{}
		}
	} else {
		watchers = append(task.Watchers, user.ID)
	}

	if err := taskstore.New(h.DB).Update(ctx, task.ID, bson.M{"watchers": watchers}); err != nil {
		h.Log.Error("toggle watch failed", zap.Error(err), zap.String("task_id", task.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	task.Watchers = watchers
	httpjson.Write(w, http.StatusOK, task)
}
