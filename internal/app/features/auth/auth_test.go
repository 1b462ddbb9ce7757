package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	userstore "github.com/Yashh-Garg/Trackwise/internal/app/store/users"
	sysauth "github.com/Yashh-Garg/Trackwise/internal/app/system/auth"
	"github.com/Yashh-Garg/Trackwise/internal/app/system/mailer"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
	"github.com/Yashh-Garg/Trackwise/internal/testutil"
)

type captureSender struct {
	sent []mailer.Email
}

func (c *captureSender) Send(e mailer.Email) error {
	c.sent = append(c.sent, e)
	return nil
}

func newTestHandler(db *mongo.Database) (*Handler, *captureSender) {
	fetch := func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
		return userstore.New(db).GetByID(ctx, id)
	}
	mgr := sysauth.NewManager("test-secret", fetch, zap.NewNop())
	mail := &captureSender{}
	cfg := Config{FrontendURL: "https://app.example.com"}
	return NewHandler(db, mgr, mail, cfg, zap.NewNop()), mail
}

func TestRegister(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	h, mail := newTestHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{
		"name": "Ava Chen", "email": "Ava@Example.com", "password": "password123",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	user, err := userstore.New(db).GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatalf("created user lookup: %v", err)
	}
	if user.IsEmailVerified {
		t.Error("new account already verified")
	}
	if user.Password == "password123" || user.Password == "" {
		t.Error("password stored unhashed or empty")
	}

	if len(mail.sent) != 1 {
		t.Fatalf("emails sent = %d, want 1", len(mail.sent))
	}
	if !strings.Contains(mail.sent[0].TextBody, "https://app.example.com/verify-email?tk=") {
		t.Errorf("verification email missing link: %s", mail.sent[0].TextBody)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	h, _ := newTestHandler(db)

	if err := userstore.New(db).EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes: %v", err)
	}
	testutil.NewFixtures(t, db).CreateUser(ctx, "First", "taken@example.com")

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{
		"name": "Second", "email": "Taken@Example.com", "password": "password123",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email address already in use") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestRegisterShortPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(db)

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{
		"name": "Ava", "email": "ava@example.com", "password": "short",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h, _ := newTestHandler(db)

	// Register, then verify by flipping the flag directly.
	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{
		"name": "Ava", "email": "ava@example.com", "password": "password123",
	})
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}

	ctx := context.Background()
	store := userstore.New(db)
	user, err := store.GetByEmail(ctx, "ava@example.com")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}

	// Unverified login is refused.
	req = testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "ava@example.com", "password": "password123"})
	rec = httptest.NewRecorder()
	h.HandleLogin(rec, req)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Email not verified") {
		t.Fatalf("unverified login: status %d body %s", rec.Code, rec.Body.String())
	}

	if err := store.MarkEmailVerified(ctx, user.ID); err != nil {
		t.Fatalf("MarkEmailVerified: %v", err)
	}

	// Wrong password gets the same message as an unknown email.
	req = testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "ava@example.com", "password": "wrong-password"})
	rec = httptest.NewRecorder()
	h.HandleLogin(rec, req)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("wrong password: status %d body %s", rec.Code, rec.Body.String())
	}

	req = testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "nobody@example.com", "password": "password123"})
	rec = httptest.NewRecorder()
	h.HandleLogin(rec, req)
	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Invalid email or password") {
		t.Fatalf("unknown email: status %d body %s", rec.Code, rec.Body.String())
	}

	// Correct credentials return a working access token.
	req = testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "ava@example.com", "password": "password123"})
	rec = httptest.NewRecorder()
	h.HandleLogin(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", rec.Code, rec.Body.String())
	}

	var resp loginResponse
	testutil.DecodeJSON(t, rec, &resp)
	if resp.Token == "" {
		t.Fatal("login response missing token")
	}
	gotID, err := h.Auth.Verify(resp.Token, sysauth.PurposeAccess)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if gotID != user.ID {
		t.Errorf("token user = %s, want %s", gotID.Hex(), user.ID.Hex())
	}
}

func TestLoginGoogleAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	h, _ := newTestHandler(db)

	user := &models.User{
		Name: "G User", Email: "guser@example.com",
		AuthProvider: models.AuthProviderGoogle, IsEmailVerified: true,
	}
	if err := userstore.New(db).Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": "guser@example.com", "password": "whatever1"})
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)

	if rec.Code != http.StatusBadRequest || !strings.Contains(rec.Body.String(), "Google sign-in") {
		t.Errorf("status %d body %s", rec.Code, rec.Body.String())
	}
}

func TestVerifyEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	h, _ := newTestHandler(db)

	user := &models.User{Name: "Pending", Email: "pending@example.com", AuthProvider: models.AuthProviderLocal}
	if err := userstore.New(db).Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}

	token, err := h.Auth.IssueVerifyEmailToken(user.ID)
	if err != nil {
		t.Fatalf("IssueVerifyEmailToken: %v", err)
	}

	req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": token})
	rec := httptest.NewRecorder()
	h.HandleVerifyEmail(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	got, err := userstore.New(db).GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.IsEmailVerified {
		t.Error("account still unverified after redeeming token")
	}

	// An access token is not accepted as a verification token.
	access, err := h.Auth.IssueAccessToken(user.ID)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	req = testutil.NewJSONRequest(t, "POST", "/", map[string]string{"token": access})
	rec = httptest.NewRecorder()
	h.HandleVerifyEmail(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("wrong-purpose token: status = %d, want 400", rec.Code)
	}
}

func TestResetPasswordRequestIsUniform(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := context.Background()
	h, mail := newTestHandler(db)
	fix := testutil.NewFixtures(t, db)

	fix.CreateUser(ctx, "Known", "known@example.com")

	// Known and unknown emails both get the same 200 so the endpoint
	// cannot be used to probe for accounts.
	for _, email := range []string{"known@example.com", "unknown@example.com"} {
		req := testutil.NewJSONRequest(t, "POST", "/", map[string]string{"email": email})
		rec := httptest.NewRecorder()
		h.HandleResetPasswordRequest(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("reset request for %s: status = %d, want 200", email, rec.Code)
		}
	}
	if len(mail.sent) != 1 {
		t.Errorf("emails sent = %d, want 1 (known address only)", len(mail.sent))
	}
}
