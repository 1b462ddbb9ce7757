// internal/app/features/projects/types.go
package projects

import "time"

type createRequest struct {
	WorkspaceID string     `json:"workspace"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	StartDate   *time.Time `json:"startDate"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        []string   `json:"tags"`
	Members     []struct {
		User string `json:"user"`
		Role string `json:"role"`
	} `json:"members"`
}

type updateRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Status      *string    `json:"status"`
	StartDate   *time.Time `json:"startDate"`
	DueDate     *time.Time `json:"dueDate"`
	Tags        *[]string  `json:"tags"`
	IsArchived  *bool      `json:"isArchived"`
}
