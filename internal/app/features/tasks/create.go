// internal/app/features/tasks/create.go
package tasks

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/htmlsanitize"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleCreate handles POST /api/tasks.
//
// The caller must be a non-viewer member of the project's workspace.
// The creator automatically watches the task.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		httpjson.Error(w, http.StatusBadRequest, "Task title is required")
		return
	}
	projID, err := primitive.ObjectIDFromHex(req.ProjectID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid project id")
		return
	}

	proj, err := projectstore.New(h.DB).GetByID(ctx, projID)
	if err != nil {
		if err == projectstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Project not found")
			return
		}
		h.Log.Error("create task load project failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	ws, err := workspacestore.New(h.DB).GetByID(ctx, proj.WorkspaceID)
	if err != nil {
		h.Log.Error("create task load workspace failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !wsauth.CanContribute(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to create tasks in this workspace")
		return
	}

	assignees := make([]primitive.ObjectID, 0, len(req.Assignees))
	for _, a := range req.Assignees {
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

	task := models.Task{
		ProjectID:   projID,
		Title:       req.Title,
		Description: htmlsanitize.Clean(req.Description),
		Status:      req.Status,
		Priority:    req.Priority,
		Assignees:   assignees,
		Watchers:    []primitive.ObjectID{user.ID},
		DueDate:     req.DueDate,
	}
	if err := taskstore.New(h.DB).Create(ctx, &task); err != nil {
		h.Log.Error("create task failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.TaskCreated(ctx, user.ID, task.ID, task.Title)

	h.Log.Info("task created",
		zap.String("task_id", task.ID.Hex()),
		zap.String("project_id", projID.Hex()))
	httpjson.Write(w, http.StatusCreated, task)
}
