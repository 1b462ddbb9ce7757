// internal/app/features/activity/list.go
package activity

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	activitystore "github.com/Yashh-Garg/Trackwise/internal/app/store/activity"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// feedLimit caps how many entries one feed request returns.
const feedLimit = 50

// ServeMine handles GET /api/activities.
//
// The caller's own recent activity, newest first.
func (h *Handler) ServeMine(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	user := sysauth.CurrentUser(r)
	list, err := activitystore.New(h.DB).ListForUser(ctx, user.ID, feedLimit)
	if err != nil {
		h.Log.Error("list user activity failed", zap.Error(err), zap.String("user_id", user.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if list == nil {
		list = []models.Activity{}
	}
	httpjson.Write(w, http.StatusOK, list)
}

// ServeForResource handles GET /api/activities/resource/{resourceId}.
//
// Recent activity touching one workspace, project or task.
func (h *Handler) ServeForResource(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resourceID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "resourceId"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "Invalid resource id")
		return
	}

	list, err := activitystore.New(h.DB).ListForResource(ctx, resourceID, feedLimit)
	if err != nil {
		h.Log.Error("list resource activity failed", zap.Error(err), zap.String("resource_id", resourceID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if list == nil {
		list = []models.Activity{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
