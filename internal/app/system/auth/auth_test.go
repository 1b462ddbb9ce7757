package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

func testManager(fetch UserFetcher) *Manager {
	return NewManager("test-secret", fetch, zap.NewNop())
}

func TestIssueAndVerifyAccessToken(t *testing.T) {
	m := testManager(nil)
	userID := primitive.NewObjectID()

	token, err := m.IssueAccessToken(userID)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	got, err := m.Verify(token, PurposeAccess)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if got != userID {
		t.Errorf("user id = %s, want %s", got.Hex(), userID.Hex())
	}
}

func TestVerifyRejectsWrongPurpose(t *testing.T) {
	m := testManager(nil)
	userID := primitive.NewObjectID()

	token, err := m.IssueVerifyEmailToken(userID)
	if err != nil {
		t.Fatalf("IssueVerifyEmailToken: %v", err)
	}

	// A verification token must not pass as an access token.
	if _, err := m.Verify(token, PurposeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with wrong purpose = %v, want ErrInvalidToken", err)
	}
	if _, err := m.Verify(token, PurposeVerifyEmail); err != nil {
		t.Errorf("Verify with right purpose = %v, want nil", err)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := testManager(nil).IssueAccessToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	other := NewManager("other-secret", nil, zap.NewNop())
	if _, err := other.Verify(token, PurposeAccess); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify with wrong secret = %v, want ErrInvalidToken", err)
	}
}

func TestRequireUser(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Ava", Email: "ava@example.com"}
	m := testManager(func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
		if id != user.ID {
			return nil, errors.New("not found")
		}
		return user, nil
	})

	var seen *models.User
	handler := m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CurrentUser(r)
	}))

	token, err := m.IssueAccessToken(user.ID)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if seen == nil || seen.ID != user.ID {
		t.Errorf("handler saw user %v, want %s", seen, user.ID.Hex())
	}
}

func TestRequireUserMissingHeader(t *testing.T) {
	handler := testManager(nil).RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestRequireUserDeletedAccount(t *testing.T) {
	m := testManager(func(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
		return nil, errors.New("not found")
	})
	handler := m.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran for a deleted account")
	}))

	token, err := m.IssueAccessToken(primitive.NewObjectID())
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc123", "abc123", true},
		{"bearer abc123", "abc123", true},
		{"", "", false},
		{"Bearer", "", false},
		{"Bearer ", "", false},
		{"Basic abc123", "", false},
	}
	for _, tc := range cases {
		r := httptest.NewRequest("GET", "/", nil)
		if tc.header != "" {
			r.Header.Set("Authorization", tc.header)
		}
		got, err := bearerToken(r)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("bearerToken(%q) = %q, %v; want %q", tc.header, got, err, tc.want)
		}
		if !tc.ok && err == nil {
			t.Errorf("bearerToken(%q) succeeded, want error", tc.header)
		}
	}
}
