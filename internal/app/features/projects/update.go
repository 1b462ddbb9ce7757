// internal/app/features/projects/update.go
package projects

import (
	"context"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/htmlsanitize"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
)

// HandleUpdate handles PUT /api/projects/{id}.
//
// Non-viewer workspace members may update. Absent fields are left
// unchanged.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	proj, ws := h.loadProject(ctx, w, r)
	if proj == nil {
		return
	}
	if !wsauth.CanContribute(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You don't have permission to update this project")
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
			httpjson.Error(w, http.StatusBadRequest, "Project title cannot be empty")
			return
		}
		set["title"] = title
		proj.Title = title
	}
	if req.Description != nil {
		desc := htmlsanitize.Clean(*req.Description)
		set["description"] = desc
		proj.Description = desc
	}
	if req.Status != nil {
		set["status"] = *req.Status
		proj.Status = *req.Status
	}
	if req.StartDate != nil {
		set["start_date"] = *req.StartDate
		proj.StartDate = req.StartDate
	}
	if req.DueDate != nil {
		set["due_date"] = *req.DueDate
		proj.DueDate = req.DueDate
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
		proj.Tags = *req.Tags
	}
	if req.IsArchived != nil {
		set["is_archived"] = *req.IsArchived
		proj.IsArchived = *req.IsArchived
	}
	if len(set) == 0 {
		httpjson.Write(w, http.StatusOK, proj)
		return
	}

	if err := projectstore.New(h.DB).Update(ctx, proj.ID, set); err != nil {
		h.Log.Error("update project failed", zap.Error(err), zap.String("project_id", proj.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.ActLog.ProjectUpdated(ctx, user.ID, proj.ID, proj.Title)
	httpjson.Write(w, http.StatusOK, proj)
}
