// internal/app/system/activitylog/logger.go
package activitylog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Yashh-Garg/Trackwise/internal/app/store/activity"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// Resource types recorded in the activity feed.
const (
	ResourceWorkspace = "Workspace"
	ResourceProject   = "Project"
	ResourceTask      = "Task"
	ResourceUser      = "User"
)

// Actions recorded in the activity feed.
const (
	ActionCreatedWorkspace   = "created_workspace"
	ActionUpdatedWorkspace   = "updated_workspace"
	ActionJoinedWorkspace    = "joined_workspace"
	ActionTransferredOwner   = "transferred_workspace_ownership"
	ActionRemovedMember      = "removed_member"
	ActionUpdatedMemberRole  = "updated_member_role"
	ActionCreatedProject     = "created_project"
	ActionUpdatedProject     = "updated_project"
	ActionDeletedProject     = "deleted_project"
	ActionCreatedTask        = "created_task"
	ActionUpdatedTask        = "updated_task"
	ActionDeletedTask        = "deleted_task"
)

// Logger records user activity to MongoDB and mirrors it to structured
// logs. Recording is fire-and-forget: a write failure is logged and
// swallowed so it can never fail the request that triggered it. A nil
// Logger is a no-op, which lets tests pass nil.
type Logger struct {
	store  *activity.Store
	zapLog *zap.Logger
}

func New(store *activity.Store, zapLog *zap.Logger) *Logger {
	return &Logger{store: store, zapLog: zapLog}
}

// Record appends one activity entry.
func (l *Logger) Record(ctx context.Context, userID primitive.ObjectID, action, resourceType string, resourceID primitive.ObjectID, details map[string]string) {
	if l == nil {
		return
	}
	a := models.Activity{
		User:         userID,
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Details:      details,
	}
	if err := l.store.Insert(ctx, &a); err != nil {
		l.zapLog.Error("failed to record activity",
			zap.Error(err),
			zap.String("action", action),
			zap.String("resource_id", resourceID.Hex()),
		)
		return
	}
	l.zapLog.Info("activity",
		zap.String("user_id", userID.Hex()),
		zap.String("action", action),
		zap.String("resource_type", resourceType),
		zap.String("resource_id", resourceID.Hex()),
	)
}

// WorkspaceCreated records creation of a workspace.
func (l *Logger) WorkspaceCreated(ctx context.Context, actor, workspaceID primitive.ObjectID, name string) {
	l.Record(ctx, actor, ActionCreatedWorkspace, ResourceWorkspace, workspaceID, map[string]string{
		"description": "created workspace " + name,
	})
}

// WorkspaceUpdated records a settings change on a workspace.
func (l *Logger) WorkspaceUpdated(ctx context.Context, actor, workspaceID primitive.ObjectID, name string) {
	l.Record(ctx, actor, ActionUpdatedWorkspace, ResourceWorkspace, workspaceID, map[string]string{
		"description": "updated workspace " + name,
	})
}

// MemberJoined records a user joining a workspace via an invitation.
func (l *Logger) MemberJoined(ctx context.Context, actor, workspaceID primitive.ObjectID, name string) {
	l.Record(ctx, actor, ActionJoinedWorkspace, ResourceWorkspace, workspaceID, map[string]string{
		"description": "joined " + name + " workspace",
	})
}

// OwnershipTransferred records a change of workspace owner.
func (l *Logger) OwnershipTransferred(ctx context.Context, actor, workspaceID, newOwner primitive.ObjectID) {
	l.Record(ctx, actor, ActionTransferredOwner, ResourceWorkspace, workspaceID, map[string]string{
		"description": "transferred ownership to " + newOwner.Hex(),
	})
}

// MemberRemoved records removal of a member from a workspace.
func (l *Logger) MemberRemoved(ctx context.Context, actor, workspaceID, removed primitive.ObjectID) {
	l.Record(ctx, actor, ActionRemovedMember, ResourceWorkspace, workspaceID, map[string]string{
		"description": "removed member " + removed.Hex(),
	})
}

// MemberRoleUpdated records a role change for a member.
func (l *Logger) MemberRoleUpdated(ctx context.Context, actor, workspaceID, member primitive.ObjectID, role string) {
	l.Record(ctx, actor, ActionUpdatedMemberRole, ResourceWorkspace, workspaceID, map[string]string{
		"description": "changed role of " + member.Hex() + " to " + role,
	})
}

// ProjectCreated records creation of a project.
func (l *Logger) ProjectCreated(ctx context.Context, actor, projectID primitive.ObjectID, title string) {
	l.Record(ctx, actor, ActionCreatedProject, ResourceProject, projectID, map[string]string{
		"description": "created project " + title,
	})
}

// ProjectUpdated records an update to a project.
func (l *Logger) ProjectUpdated(ctx context.Context, actor, projectID primitive.ObjectID, title string) {
	l.Record(ctx, actor, ActionUpdatedProject, ResourceProject, projectID, map[string]string{
		"description": "updated project " + title,
	})
}

// ProjectDeleted records deletion of a project.
func (l *Logger) ProjectDeleted(ctx context.Context, actor, projectID primitive.ObjectID, title string) {
	l.Record(ctx, actor, ActionDeletedProject, ResourceProject, projectID, map[string]string{
		"description": "deleted project " + title,
	})
}

// TaskCreated records creation of a task.
func (l *Logger) TaskCreated(ctx context.Context, actor, taskID primitive.ObjectID, title string) {
	l.Record(ctx, actor, ActionCreatedTask, ResourceTask, taskID, map[string]string{
		"description": "created task " + title,
	})
}

// TaskUpdated records an update to a task.
func (l *Logger) TaskUpdated(ctx context.Context, actor, taskID primitive.ObjectID, title string) {
	l.Record(ctx, actor, ActionUpdatedTask, ResourceTask, taskID, map[string]string{
		"description": "updated task " + title,
	})
}

// TaskDeleted records deletion of a task.
func (l *Logger) TaskDeleted(ctx context.Context, actor, taskID primitive.ObjectID, title string) {
	l.Record(ctx, actor, ActionDeletedTask, ResourceTask, taskID, map[string]string{
		"description": "deleted task " + title,
	})
}
