// Package session implements the signed-cookie session: an HMAC-signed
// token carrying the logged-in user's id and username, held entirely by
// the client. There is no server-side session storage.
package session

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Dan9191/auth-service/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the name of the session cookie.
const CookieName = "session"

// Identity is the authenticated principal stored in the session.
type Identity struct {
	UserID   int
	Username string
}

type claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager initializes a session manager with the signing secret and
// session lifetime.
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// Issue establishes a session for the user by setting a signed cookie
func (m *Manager) Issue(w http.ResponseWriter, user *models.User) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(user.ID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return fmt.Errorf("failed to sign session: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Current returns the identity carried by the request's session cookie.
// A missing, expired, or tampered cookie yields ok=false; the caller
// cannot distinguish the cases and should not need to.
func (m *Manager) Current(r *http.Request) (Identity, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return Identity{}, false
	}

	var c claims
	token, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, false
	}

	userID, err := strconv.Atoi(c.Subject)
	if err != nil {
		return Identity{}, false
	}
	return Identity{UserID: userID, Username: c.Username}, true
}

// Clear invalidates the session cookie. Safe to call with no session.
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
