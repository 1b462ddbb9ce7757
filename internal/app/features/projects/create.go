// internal/app/features/projects/create.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/htmlsanitize"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// HandleCreate handles POST /api/projects.
//
// The caller must be a non-viewer member of the target workspace.
// Project members must already be workspace members; the creator is
// always added as manager.
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
		httpjson.Error(w, http.StatusBadRequest, "Project title is required")
		return
	}
	wsID, err := primitive.ObjectIDFromHex(req.WorkspaceID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid workspace id")
		return
	}

	ws, err := workspacestore.New(h.DB).GetByID(ctx, wsID)
	if err != nil {
		if err == workspacestore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "Workspace not found")
			return
		}
		h.Log.Error("create project load workspace failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !wsauth.CanContribute(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to create projects in this workspace")
		return
	}

	members := []models.ProjectMember{{User: user.ID, Role: models.ProjectRoleManager}}
	for _, m := range req.Members {
		uid, err := primitive.ObjectIDFromHex(m.User)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "Invalid project member id")
			return
		}
		if uid == user.ID {
			continue
		}
		if !ws.HasMember(uid) {
			httpjson.Error(w, http.StatusBadRequest, "Project members must be workspace members")
			return
		}
		role := m.Role
		if role == "" {
			role = models.ProjectRoleContributor
		}
		members = append(members, models.ProjectMember{User: uid, Role: role})
	}

	proj := models.Project{
		WorkspaceID: wsID,
		Title:       req.Title,
		Description: htmlsanitize.Clean(req.Description),
		Status:      req.Status,
		StartDate:   req.StartDate,
		DueDate:     req.DueDate,
		Tags:        req.Tags,
		Members:     members,
	}
	if err := projectstore.New(h.DB).Create(ctx, &proj); err != nil {
		h.Log.Error("create project failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.ProjectCreated(ctx, user.ID, proj.ID, proj.Title)

	h.Log.Info("project created",
		zap.String("project_id", proj.ID.Hex()),
		zap.String("workspace_id", wsID.Hex()))
	httpjson.Write(w, http.StatusCreated, proj)
}
