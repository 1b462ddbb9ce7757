// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/Yashh-Garg/Trackwise/internal/app/system/httpjson"
	"github.com/Yashh-Garg/Trackwise/internal/domain/models"
)

// Token purposes. Access tokens are the only kind accepted by the
// bearer middleware; email verification and password reset tokens are
// single-purpose and rejected there.
const (
	PurposeAccess        = "access"
	PurposeVerifyEmail   = "email-verification"
	PurposeResetPassword = "reset-password"
)

// Access token lifetime.
const accessTokenTTL = 7 * 24 * time.Hour

// Short-lived token lifetimes for email flows.
const (
	verifyEmailTTL   = 1 * time.Hour
	resetPasswordTTL = 15 * time.Minute
)

var (
	ErrNoToken      = errors.New("no bearer token")
	ErrInvalidToken = errors.New("invalid or expired token")
)

type ctxKey struct{}

// Claims is the JWT payload for all auth tokens the service signs.
type Claims struct {
	UserID  string `json:"userId"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// UserFetcher loads a user by id so the middleware can attach a fresh
// record to the request context on every call.
type UserFetcher func(ctx context.Context, id primitive.ObjectID) (*models.User, error)

// Manager signs and verifies the service's JWTs and carries the
// middleware that guards authenticated routes.
type Manager struct {
	secret []byte
	fetch  UserFetcher
	log    *zap.Logger
}

func NewManager(secret string, fetch UserFetcher, log *zap.Logger) *Manager {
	return &Manager{secret: []byte(secret), fetch: fetch, log: log}
}

// IssueAccessToken signs a 7-day access token for the user.
func (m *Manager) IssueAccessToken(userID primitive.ObjectID) (string, error) {
	return m.sign(userID, PurposeAccess, accessTokenTTL)
}

// IssueVerifyEmailToken signs a short-lived email verification token.
func (m *Manager) IssueVerifyEmailToken(userID primitive.ObjectID) (string, error) {
	return m.sign(userID, PurposeVerifyEmail, verifyEmailTTL)
}

// IssueResetPasswordToken signs a short-lived password reset token.
func (m *Manager) IssueResetPasswordToken(userID primitive.ObjectID) (string, error) {
	return m.sign(userID, PurposeResetPassword, resetPasswordTTL)
}

func (m *Manager) sign(userID primitive.ObjectID, purpose string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		UserID:  userID.Hex(),
		Purpose: purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Verify parses a token, checks its signature and expiry, and requires
// the expected purpose. Returns the user id the token was issued for.
func (m *Manager) Verify(tokenStr, purpose string) (primitive.ObjectID, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !tok.Valid {
		return primitive.NilObjectID, ErrInvalidToken
	}
	if claims.Purpose != purpose {
		return primitive.NilObjectID, ErrInvalidToken
	}
	id, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidToken
	}
	return id, nil
}

// RequireUser is the bearer middleware. It extracts the Authorization
// header, verifies the access token, loads a fresh user record, and
// stores it in the request context for CurrentUser.
func (m *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr, err := bearerToken(r)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		userID, err := m.Verify(tokenStr, PurposeAccess)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		user, err := m.fetch(r.Context(), userID)
		if err != nil {
			// A valid token for a deleted account is still unauthorized.
			m.log.Debug("bearer token for unknown user", zap.String("user_id", userID.Hex()))
			httpjson.Error(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
	})
}

func bearerToken(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	if h == "" {
		return "", ErrNoToken
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrNoToken
	}
	return parts[1], nil
}

// WithUser returns a context carrying the authenticated user. Exposed
// so tests can inject a user without minting a token.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// CurrentUser returns the authenticated user attached by RequireUser,
// or nil when the request is unauthenticated.
func CurrentUser(r *http.Request) *models.User {
	u, _ := r.Context().Value(ctxKey{}).(*models.User)
	return u
}
