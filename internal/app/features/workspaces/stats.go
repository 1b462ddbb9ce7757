// internal/app/features/workspaces/stats.go
package workspaces

import (
	"context"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	projectstore "github.com/Yashh-Garg/Trackwise/internal/app/store/projects"
	taskstore "github.com/Yashh-Garg/Trackwise/internal/app/store/tasks"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/timeouts"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/wsauth"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

type statsTotals struct {
	TotalProjects          int `json:"totalProjects"`
	TotalTasks             int `json:"totalTasks"`
	TotalProjectInProgress int `json:"totalProjectInProgress"`
	TotalTaskCompleted     int `json:"totalTaskCompleted"`
	TotalTaskToDo          int `json:"totalTaskToDo"`
	TotalTaskInProgress    int `json:"totalTaskInProgress"`
}

type trendDay struct {
	Name       string `json:"name"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"inProgress"`
	ToDo       int    `json:"todo"`
}

type chartSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

type projectProductivity struct {
	Name      string `json:"name"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
}

type statsResponse struct {
	Stats                     statsTotals           `json:"stats"`
	TaskTrendsData            []trendDay            `json:"taskTrendsData"`
	ProjectStatusData         []chartSlice          `json:"projectStatusData"`
	TaskPriorityData          []chartSlice          `json:"taskPriorityData"`
	WorkspaceProductivityData []projectProductivity `json:"workspaceProductivityData"`
	UpcomingTasks             []models.Task         `json:"upcomingTasks"`
	RecentProjects            []models.Project      `json:"recentProjects"`
}

// ServeStats handles GET /api/workspaces/{id}/stats.
//
// Membership-gated dashboard aggregation: totals, a task trend for the
// last seven days keyed by weekday, project status and task priority
// distributions, per-project completion counts, tasks due in the next
// seven days, and the five most recent projects.
func (h *Handler) ServeStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	user := sysauth.CurrentUser(r)
	ws := h.loadWorkspace(ctx, w, r)
	if ws == nil {
		return
	}
	if !wsauth.CanView(ws, user.ID) {
		httpjson.Error(w, http.StatusForbidden, "You are not a member of this workspace")
		return
	}

	projects, err := projectstore.New(h.DB).ListAllForWorkspace(ctx, ws.ID)
	if err != nil {
		h.Log.Error("stats list projects failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	projectIDs := make([]primitive.ObjectID, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	tasks, err := taskstore.New(h.DB).ListForProjects(ctx, projectIDs)
	if err != nil {
		h.Log.Error("stats list tasks failed", zap.Error(err), zap.String("workspace_id", ws.ID.Hex()))
		httpjson.Error(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	resp := statsResponse{
		TaskTrendsData:            buildTaskTrends(tasks, time.Now()),
		ProjectStatusData:         buildProjectStatus(projects),
		TaskPriorityData:          buildTaskPriority(tasks),
		WorkspaceProductivityData: buildProductivity(projects, tasks),
		UpcomingTasks:             upcomingTasks(tasks, time.Now()),
		RecentProjects:            projects,
	}
	if len(resp.RecentProjects) > 5 {
		resp.RecentProjects = resp.RecentProjects[:5]
	}

	resp.Stats.TotalProjects = len(projects)
	resp.Stats.TotalTasks = len(tasks)
	for _, p := range projects {
		if p.Status == models.ProjectInProgress {
			resp.Stats.TotalProjectInProgress++
		}
	}
	for _, t := range tasks {
		switch t.Status {
		case models.TaskDone:
			resp.Stats.TotalTaskCompleted++
		case models.TaskToDo:
			resp.Stats.TotalTaskToDo++
		case models.TaskInProgress:
			resp.Stats.TotalTaskInProgress++
		}
	}

	httpjson.Write(w, http.StatusOK, resp)
}

// buildTaskTrends buckets tasks updated in the last seven days by the
// weekday of their last update.
func buildTaskTrends(tasks []models.Task, now time.Time) []trendDay {
	trends := []trendDay{
		{Name: "Sun"}, {Name: "Mon"}, {Name: "Tue"}, {Name: "Wed"},
		{Name: "Thu"}, {Name: "Fri"}, {Name: "Sat"},
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	windowStart := today.AddDate(0, 0, -6)

	for _, t := range tasks {
		updated := t.UpdatedAt.In(now.Location())
		day := time.Date(updated.Year(), updated.Month(), updated.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(windowStart) || day.After(today) {
			continue
		}
		bucket := &trends[int(day.Weekday())]
		switch t.Status {
		case models.TaskDone:
			bucket.Completed++
		case models.TaskInProgress:
			bucket.InProgress++
		case models.TaskToDo:
			bucket.ToDo++
		}
	}
	return trends
}

func buildProjectStatus(projects []models.Project) []chartSlice {
	data := []chartSlice{
		{Name: models.ProjectCompleted, Color: "#10b981"},
		{Name: models.ProjectInProgress, Color: "#3b82f6"},
		{Name: models.ProjectPlanning, Color: "#f59e0b"},
	}
	for _, p := range projects {
		for i := range data {
			if data[i].Name == p.Status {
				data[i].Value++
				break
			}
		}
	}
	return data
}

func buildTaskPriority(tasks []models.Task) []chartSlice {
	data := []chartSlice{
		{Name: models.PriorityHigh, Color: "#ef4444"},
		{Name: models.PriorityMedium, Color: "#f59e0b"},
		{Name: models.PriorityLow, Color: "#6b7280"},
	}
	for _, t := range tasks {
		for i := range data {
			if data[i].Name == t.Priority {
				data[i].Value++
				break
			}
		}
	}
	return data
}

func buildProductivity(projects []models.Project, tasks []models.Task) []projectProductivity {
	out := make([]projectProductivity, 0, len(projects))
	for _, p := range projects {
		row := projectProductivity{Name: p.Title}
		for _, t := range tasks {
			if t.ProjectID != p.ID {
				continue
			}
			row.Total++
			if t.Status == models.TaskDone && !t.IsArchived {
				row.Completed++
			}
		}
		out = append(out, row)
	}
	return out
}

// upcomingTasks returns tasks due strictly after now and within the
// next seven days.
func upcomingTasks(tasks []models.Task, now time.Time) []models.Task {
	cutoff := now.Add(7 * 24 * time.Hour)
	out := []models.Task{}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if t.DueDate.After(now) && !t.DueDate.After(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
