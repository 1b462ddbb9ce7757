package workspaces

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
	"github.com/Yashh-Garg/Trackwise/internal/testutil"
)

func TestListForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	member := fix.CreateUser(ctx, "Member", "member@example.com")

	mine := fix.CreateWorkspace(ctx, "Mine", owner.ID)
	shared := fix.CreateWorkspace(ctx, "Shared", member.ID)
	fix.AddMember(ctx, shared.ID, owner.ID, models.RoleViewer)
	fix.CreateWorkspace(ctx, "Unrelated", member.ID)

	list, err := New(db).ListForUser(ctx, owner.ID)
	if err != nil {
		t.Fatalf("ListForUser: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	seen := map[primitive.ObjectID]bool{}
	for _, w := range list {
		seen[w.ID] = true
	}
	if !seen[mine.ID] || !seen[shared.ID] {
		t.Errorf("list missing expected workspaces: %v", seen)
	}
}

func TestReplaceMembers(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	joiner := fix.CreateUser(ctx, "Joiner", "joiner@example.com")
	ws := fix.CreateWorkspace(ctx, "Team", owner.ID)

	members := append(ws.Members, models.Membership{
		User: joiner.ID, Role: models.RoleMember, JoinedAt: time.Now().UTC(),
	})
	if err := store.ReplaceMembers(ctx, ws.ID, members); err != nil {
		t.Fatalf("ReplaceMembers: %v", err)
	}

	got, err := store.GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.Members) != 2 {
		t.Fatalf("members = %d, want 2", len(got.Members))
	}
	if role, ok := got.MemberRole(joiner.ID); !ok || role != models.RoleMember {
		t.Errorf("joiner role = %q, %v", role, ok)
	}
}

func TestSetOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)

	oldOwner := fix.CreateUser(ctx, "Old", "old@example.com")
	newOwner := fix.CreateUser(ctx, "New", "new@example.com")
	ws := fix.CreateWorkspace(ctx, "Handover", oldOwner.ID)
	fix.AddMember(ctx, ws.ID, newOwner.ID, models.RoleAdmin)

	members := []models.Membership{
		{User: oldOwner.ID, Role: models.RoleAdmin, JoinedAt: ws.CreatedAt},
		{User: newOwner.ID, Role: models.RoleOwner, JoinedAt: time.Now().UTC()},
	}
	if err := store.SetOwner(ctx, ws.ID, newOwner.ID, members); err != nil {
		t.Fatalf("SetOwner: %v", err)
	}

	got, err := store.GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Owner != newOwner.ID {
		t.Errorf("owner = %s, want %s", got.Owner.Hex(), newOwner.ID.Hex())
	}
	if role, _ := got.MemberRole(oldOwner.ID); role != models.RoleAdmin {
		t.Errorf("old owner role = %q, want admin", role)
	}
}

func TestDelete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	ws := fix.CreateWorkspace(ctx, "Doomed", owner.ID)

	if err := store.Delete(ctx, ws.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.GetByID(ctx, ws.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}
