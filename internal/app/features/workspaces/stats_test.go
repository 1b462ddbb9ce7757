package workspaces

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

func TestBuildTaskTrends(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC) // a Saturday
	tasks := []models.Task{
		{Status: models.TaskDone, UpdatedAt: now},                        // Sat
		{Status: models.TaskToDo, UpdatedAt: now.AddDate(0, 0, -1)},      // Fri
		{Status: models.TaskInProgress, UpdatedAt: now.AddDate(0, 0, -6)}, // Sun, still in window
		{Status: models.TaskDone, UpdatedAt: now.AddDate(0, 0, -7)},      // out of window
	}

	trends := buildTaskTrends(tasks, now)
	if len(trends) != 7 {
		t.Fatalf("len = %d, want 7", len(trends))
	}

	byName := map[string]trendDay{}
	for _, d := range trends {
		byName[d.Name] = d
	}
	if byName["Sat"].Completed != 1 {
		t.Errorf("Sat completed = %d, want 1", byName["Sat"].Completed)
	}
	if byName["Fri"].ToDo != 1 {
		t.Errorf("Fri todo = %d, want 1", byName["Fri"].ToDo)
	}
	if byName["Sun"].InProgress != 1 {
		t.Errorf("Sun inProgress = %d, want 1", byName["Sun"].InProgress)
	}
	total := 0
	for _, d := range trends {
		total += d.Completed + d.InProgress + d.ToDo
	}
	if total != 3 {
		t.Errorf("bucketed tasks = %d, want 3 (week-old task excluded)", total)
	}
}

func TestUpcomingTasks(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	in3 := now.AddDate(0, 0, 3)
	in10 := now.AddDate(0, 0, 10)
	past := now.AddDate(0, 0, -1)

	tasks := []models.Task{
		{Title: "soon", DueDate: &in3},
		{Title: "far", DueDate: &in10},
		{Title: "overdue", DueDate: &past},
		{Title: "no due date"},
	}

	got := upcomingTasks(tasks, now)
	if len(got) != 1 || got[0].Title != "soon" {
		t.Errorf("upcoming = %+v, want just the task due in 3 days", got)
	}
}

func TestBuildProductivity(t *testing.T) {
	projID := primitive.NewObjectID()
	other := primitive.NewObjectID()
	projects := []models.Project{{ID: projID, Title: "Site"}}
	tasks := []models.Task{
		{ProjectID: projID, Status: models.TaskDone},
		{ProjectID: projID, Status: models.TaskDone, IsArchived: true},
		{ProjectID: projID, Status: models.TaskToDo},
		{ProjectID: other, Status: models.TaskDone},
	}

	got := buildProductivity(projects, tasks)
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	// Archived completions count toward total but not completed.
	if got[0].Total != 3 || got[0].Completed != 1 {
		t.Errorf("productivity = %+v, want total 3 completed 1", got[0])
	}
}
