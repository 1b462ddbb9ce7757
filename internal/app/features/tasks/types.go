// internal/app/features/tasks/types.go
package tasks

import "time"

type createRequest struct {
	ProjectID   string     `json:"project"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	Assignees   []string   `json:"assignees"`
	DueDate     *time.Time `json:"dueDate"`
}

type updateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	Priority    *string    `json:"priority"`
	Assignees   *[]string  `json:"assignees"`
	DueDate     *time.Time `json:"dueDate"`
	IsArchived  *bool      `json:"isArchived"`
}
