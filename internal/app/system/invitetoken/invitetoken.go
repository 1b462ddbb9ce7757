// Package invitetoken signs and verifies workspace invitation tokens.
// The token is the authoritative expiry: the stored invite row mirrors
// the same 7-day window, but acceptance checks the signed claims.
package invitetoken

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TTL is how long an invitation stays redeemable.
const TTL = 7 * 24 * time.Hour

const purpose = "workspace-invite"

var (
	ErrInvalid = errors.New("invalid invitation token")
	ErrExpired = errors.New("invitation has expired")
)

// Claims is the signed payload of an invitation. User is set only when
// the invited email already had an account at issue time.
type Claims struct {
	Email       string `json:"email"`
	WorkspaceID string `json:"workspaceId"`
	Role        string `json:"role"`
	User        string `json:"user,omitempty"`
	Purpose     string `json:"purpose"`
	jwt.RegisteredClaims
}

// Invite is the verified, decoded form of a token.
type Invite struct {
	Email       string
	WorkspaceID primitive.ObjectID
	Role        string
	User        *primitive.ObjectID
	ExpiresAt   time.Time
}

// Signer issues and verifies invitation tokens with one HMAC secret.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign issues a 7-day invitation token for the given email, workspace
// and role. userID may be nil when the email has no account yet.
func (s *Signer) Sign(email string, workspaceID primitive.ObjectID, role string, userID *primitive.ObjectID, now time.Time) (string, time.Time, error) {
	expires := now.Add(TTL)
	claims := Claims{
		Email:       strings.ToLower(strings.TrimSpace(email)),
		WorkspaceID: workspaceID.Hex(),
		Role:        role,
		Purpose:     purpose,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	if userID != nil {
		claims.User = userID.Hex()
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tok, expires, nil
}

// Verify checks signature, purpose and expiry, and decodes the invite.
// An expired signature comes back as ErrExpired so callers can show the
// right message.
func (s *Signer) Verify(tokenStr string) (*Invite, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpired
		}
		return nil, ErrInvalid
	}
	if !tok.Valid || claims.Purpose != purpose {
		return nil, ErrInvalid
	}

	wsID, err := primitive.ObjectIDFromHex(claims.WorkspaceID)
	if err != nil {
		return nil, ErrInvalid
	}
	inv := &Invite{
		Email:       claims.Email,
		WorkspaceID: wsID,
		Role:        claims.Role,
	}
	if claims.ExpiresAt != nil {
		inv.ExpiresAt = claims.ExpiresAt.Time
	}
	if claims.User != "" {
		uid, err := primitive.ObjectIDFromHex(claims.User)
		if err != nil {
			return nil, ErrInvalid
		}
		inv.User = &uid
	}
	return inv, nil
}
