package workspaces

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	invitestore "github.com/Yashh-Garg/Trackwise/internal/app/store/invites"
	workspacestore "github.com/Yashh-Garg/Trackwise/internal/app/store/workspaces"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/invitetoken"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
	"github.com/Yashh-Garg/Trackwise/internal/testutil"
)

// captureSender records sent emails instead of delivering them.
type captureSender struct {
	sent []mailer.Email
}

func (c *captureSender) Send(e mailer.Email) error {
	c.sent = append(c.sent, e)
	return nil
}

func newTestHandler(db *mongo.Database) (*Handler, *captureSender) {
	mail := &captureSender{}
	h := NewHandler(db, invitetoken.NewSigner("test-secret"), nil, mail, "https://app.example.com", zap.NewNop())
	return h, mail
}

func TestInviteMemberStoresRowAndSendsEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, mail := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "New@Example.com", "role": "admin"})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &owner)
	rec := httptest.NewRecorder()
	h.HandleInviteMember(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(mail.sent) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(mail.sent))
	}
	if mail.sent[0].To != "new@example.com" {
		t.Errorf("email to = %q, want normalized new@example.com", mail.sent[0].To)
	}
	wantPrefix := "https://app.example.com/workspace-invite/" + ws.ID.Hex() + "?tk="
	if !strings.Contains(mail.sent[0].TextBody, wantPrefix) {
		t.Errorf("email body missing invite link prefix %q", wantPrefix)
	}

	inv, err := invitestore.New(db).FindLatestForUserOrEmail(ctx, ws.ID, owner.ID, "new@example.com")
	if err != nil {
		t.Fatalf("stored invite lookup: %v", err)
	}
	if inv.Role != models.RoleAdmin {
		t.Errorf("invite role = %q, want admin", inv.Role)
	}
}

func TestInviteMemberSupersedesPriorInvite(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.CreateInvite(ctx, "again@example.com", ws.ID, models.RoleViewer, "stale-token", time.Now().Add(-time.Hour))

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "again@example.com", "role": "member"})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &owner)
	rec := httptest.NewRecorder()
	h.HandleInviteMember(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	inv, err := invitestore.New(db).FindLatestForUserOrEmail(ctx, ws.ID, owner.ID, "again@example.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	// The stale viewer invite was deleted; only the fresh one remains.
	if inv.Role != models.RoleMember || inv.Token == "stale-token" {
		t.Errorf("surviving invite = role %q token %q, want the fresh member invite", inv.Role, inv.Token)
	}
}

func TestInviteMemberAlreadyMember(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, mail := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	member := fix.CreateUser(ctx, "Member", "member@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, member.ID, models.RoleMember)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "member@example.com"})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &owner)
	rec := httptest.NewRecorder()
	h.HandleInviteMember(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already a member") {
		t.Errorf("body = %s", rec.Body.String())
	}
	if len(mail.sent) != 0 {
		t.Errorf("email sent for a rejected invite")
	}
}

func TestInviteMemberRequiresManage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	member := fix.CreateUser(ctx, "Member", "member@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, member.ID, models.RoleMember)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "x@example.com"})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &member)
	rec := httptest.NewRecorder()
	h.HandleInviteMember(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestAcceptInviteToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	invitee := fix.CreateUser(ctx, "Invitee", "invitee@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)

	token, expires, err := h.Invites.Sign("invitee@example.com", ws.ID, models.RoleAdmin, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	fix.CreateInvite(ctx, "invitee@example.com", ws.ID, models.RoleAdmin, token, expires)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": token})
	req = testutil.WithUser(req, &invitee)
	rec := httptest.NewRecorder()
	h.HandleAcceptInviteToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	got, err := workspacestore.New(db).GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if role, ok := got.MemberRole(invitee.ID); !ok || role != models.RoleAdmin {
		t.Errorf("invitee role = %q, %v; want admin membership", role, ok)
	}

	// The invite row is consumed on success.
	if _, err := invitestore.New(db).FindLatestForUserOrEmail(ctx, ws.ID, invitee.ID, invitee.Email); err != invitestore.ErrNotFound {
		t.Errorf("invite row still present after accept: %v", err)
	}
}

func TestAcceptInviteWrongEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	other := fix.CreateUser(ctx, "Other", "other@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)

	token, _, err := h.Invites.Sign("invitee@example.com", ws.ID, models.RoleMember, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": token})
	req = testutil.WithUser(req, &other)
	rec := httptest.NewRecorder()
	h.HandleAcceptInviteToken(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "different email address") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAcceptInviteExpiredToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	invitee := fix.CreateUser(ctx, "Invitee", "invitee@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", fix.CreateUser(ctx, "Owner", "owner@example.com").ID)

	issued := time.Now().Add(-invitetoken.TTL - time.Hour)
	token, _, err := h.Invites.Sign("invitee@example.com", ws.ID, models.RoleMember, nil, issued)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": token})
	req = testutil.WithUser(req, &invitee)
	rec := httptest.NewRecorder()
	h.HandleAcceptInviteToken(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invitation has expired") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAcceptInviteInvalidToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	user := fix.CreateUser(ctx, "User", "user@example.com")

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": "not-a-jwt"})
	req = testutil.WithUser(req, &user)
	rec := httptest.NewRecorder()
	h.HandleAcceptInviteToken(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "Invalid invitation token") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestAcceptInviteTokenRoleWinsOverRow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	invitee := fix.CreateUser(ctx, "Invitee", "invitee@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)

	// A viewer token redeemed after a re-invite as admin: the newest
	// stored row says admin, but the token carries viewer.
	token, expires, err := h.Invites.Sign("invitee@example.com", ws.ID, models.RoleViewer, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	fix.CreateInvite(ctx, "invitee@example.com", ws.ID, models.RoleAdmin, token, expires)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": token})
	req = testutil.WithUser(req, &invitee)
	rec := httptest.NewRecorder()
	h.HandleAcceptInviteToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got, err := workspacestore.New(db).GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if role, ok := got.MemberRole(invitee.ID); !ok || role != models.RoleViewer {
		t.Errorf("invitee role = %q, %v; want the token's viewer role", role, ok)
	}
}

func TestAcceptInviteExpiredRowIsRetained(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	invitee := fix.CreateUser(ctx, "Invitee", "invitee@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", fix.CreateUser(ctx, "Owner", "owner@example.com").ID)

	// Token still valid, but the stored row's expiry has passed.
	token, _, err := h.Invites.Sign("invitee@example.com", ws.ID, models.RoleMember, nil, time.Now().UTC())
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	fix.CreateInvite(ctx, "invitee@example.com", ws.ID, models.RoleMember, token, time.Now().Add(-time.Minute))

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": token})
	req = testutil.WithUser(req, &invitee)
	rec := httptest.NewRecorder()
	h.HandleAcceptInviteToken(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	// The expired row stays until a fresh invite supersedes it.
	if _, err := invitestore.New(db).FindLatestForUserOrEmail(ctx, ws.ID, invitee.ID, invitee.Email); err != nil {
		t.Errorf("expired invite row was removed: %v", err)
	}
}

func TestAcceptGenerateInviteOpenJoin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	joiner := fix.CreateUser(ctx, "Joiner", "joiner@example.com")
	ws := fix.CreateWorkspace(ctx, "Open", fix.CreateUser(ctx, "Owner", "owner@example.com").ID)

	req := testutil.NewJSONRequest(t, "POST", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &joiner)
	rec := httptest.NewRecorder()
	h.HandleAcceptGenerateInvite(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got, err := workspacestore.New(db).GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if role, _ := got.MemberRole(joiner.ID); role != models.RoleMember {
		t.Errorf("joiner role = %q, want member", role)
	}
}

func TestRemoveMemberCannotRemoveOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	admin := fix.CreateUser(ctx, "Admin", "admin@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, admin.ID, models.RoleAdmin)

	req := testutil.NewJSONRequest(t, "DELETE", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithChiURLParam(req, "memberId", owner.ID.Hex())
	req = testutil.WithUser(req, &admin)
	rec := httptest.NewRecorder()
	h.HandleRemoveMember(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Cannot remove the workspace owner") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRemoveMemberSelfRemovalForbidden(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	viewer := fix.CreateUser(ctx, "Viewer", "viewer@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, viewer.ID, models.RoleViewer)

	// The owner/admin gate applies to self-removal too.
	req := testutil.NewJSONRequest(t, "DELETE", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithChiURLParam(req, "memberId", viewer.ID.Hex())
	req = testutil.WithUser(req, &viewer)
	rec := httptest.NewRecorder()
	h.HandleRemoveMember(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403, body %s", rec.Code, rec.Body.String())
	}
	got, err := workspacestore.New(db).GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.HasMember(viewer.ID) {
		t.Error("viewer was removed despite the forbidden response")
	}
}

func TestRemoveMemberReturnsUpdatedWorkspace(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	admin := fix.CreateUser(ctx, "Admin", "admin@example.com")
	viewer := fix.CreateUser(ctx, "Viewer", "viewer@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, admin.ID, models.RoleAdmin)
	fix.AddMember(ctx, ws.ID, viewer.ID, models.RoleViewer)

	req := testutil.NewJSONRequest(t, "DELETE", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithChiURLParam(req, "memberId", viewer.ID.Hex())
	req = testutil.WithUser(req, &admin)
	rec := httptest.NewRecorder()
	h.HandleRemoveMember(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Message   string           `json:"message"`
		Workspace models.Workspace `json:"workspace"`
	}
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Workspace.HasMember(viewer.ID) {
		t.Error("returned workspace still lists the removed member")
	}
	if len(resp.Workspace.Members) != 2 {
		t.Errorf("returned members = %d, want 2", len(resp.Workspace.Members))
	}

	got, err := workspacestore.New(db).GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.HasMember(viewer.ID) {
		t.Error("viewer still a member after removal")
	}
}

func TestDeleteCascades(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	proj := fix.CreateProject(ctx, "Site", ws.ID, owner.ID)
	fix.CreateTask(ctx, "Wireframes", proj.ID)
	fix.CreateInvite(ctx, "new@example.com", ws.ID, models.RoleMember, "tok", time.Now().Add(time.Hour))

	req := testutil.NewJSONRequest(t, "DELETE", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &owner)
	rec := httptest.NewRecorder()
	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	if _, err := workspacestore.New(db).GetByID(ctx, ws.ID); err != workspacestore.ErrNotFound {
		t.Errorf("workspace still present after delete: %v", err)
	}
	for _, c := range []struct {
		collection string
		filter     bson.M
	}{
		{"projects", bson.M{"workspace_id": ws.ID}},
		{"tasks", bson.M{"project_id": proj.ID}},
		{"workspace_invites", bson.M{"workspace_id": ws.ID}},
	} {
		n, err := db.Collection(c.collection).CountDocuments(ctx, c.filter)
		if err != nil {
			t.Fatalf("count %s: %v", c.collection, err)
		}
		if n != 0 {
			t.Errorf("%s rows remaining = %d, want 0", c.collection, n)
		}
	}
}

func TestUpdateMemberRoleOwnerUnchangeable(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)

	req := testutil.NewJSONRequest(t, "PUT", "/", map[string]string{"role": "viewer"})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithChiURLParam(req, "memberId", owner.ID.Hex())
	req = testutil.WithUser(req, &owner)
	rec := httptest.NewRecorder()
	h.HandleUpdateMemberRole(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestTransferOwnership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	successor := fix.CreateUser(ctx, "Successor", "successor@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, successor.ID, models.RoleMember)

	req := testutil.NewJSONRequest(t, "PUT", "/", map[string]string{"newOwnerId": successor.ID.Hex()})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &owner)
	rec := httptest.NewRecorder()
	h.HandleTransferOwnership(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	got, err := workspacestore.New(db).GetByID(ctx, ws.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Owner != successor.ID {
		t.Errorf("owner = %s, want %s", got.Owner.Hex(), successor.ID.Hex())
	}
	if role, _ := got.MemberRole(owner.ID); role != models.RoleAdmin {
		t.Errorf("old owner role = %q, want admin", role)
	}
	if role, _ := got.MemberRole(successor.ID); role != models.RoleOwner {
		t.Errorf("new owner role = %q, want owner", role)
	}
}

func TestTransferOwnershipRequiresOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	admin := fix.CreateUser(ctx, "Admin", "admin@example.com")
	ws := fix.CreateWorkspace(ctx, "Design", owner.ID)
	fix.AddMember(ctx, ws.ID, admin.ID, models.RoleAdmin)

	req := testutil.NewJSONRequest(t, "PUT", "/", map[string]string{"newOwnerId": admin.ID.Hex()})
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &admin)
	rec := httptest.NewRecorder()
	h.HandleTransferOwnership(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestGetRequiresMembership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	stranger := fix.CreateUser(ctx, "Stranger", "stranger@example.com")
	ws := fix.CreateWorkspace(ctx, "Private", fix.CreateUser(ctx, "Owner", "owner@example.com").ID)

	req := testutil.NewJSONRequest(t, "GET", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &stranger)
	rec := httptest.NewRecorder()
	h.ServeGet(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestDetailsDoesNotRequireMembership(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	fix := testutil.NewFixtures(t, db)
	h, _ := newTestHandler(db)

	stranger := fix.CreateUser(ctx, "Stranger", "stranger@example.com")
	owner := fix.CreateUser(ctx, "Owner", "owner@example.com")
	ws := fix.CreateWorkspace(ctx, "Visible", owner.ID)

	req := testutil.NewJSONRequest(t, "GET", "/", nil)
	req = testutil.WithChiURLParam(req, "id", ws.ID.Hex())
	req = testutil.WithUser(req, &stranger)
	rec := httptest.NewRecorder()
	h.ServeDetails(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), owner.Name) {
		t.Errorf("details body missing expanded member name: %s", rec.Body.String())
	}
}
