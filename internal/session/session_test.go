package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dan9191/auth-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func issueCookie(t *testing.T, m *Manager, user *models.User) *http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(rec, user))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0]
}

func TestIssueAndCurrent(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	cookie := issueCookie(t, m, &models.User{ID: 42, Username: "alice"})

	assert.Equal(t, CookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.AddCookie(cookie)

	ident, ok := m.Current(req)
	require.True(t, ok)
	assert.Equal(t, 42, ident.UserID)
	assert.Equal(t, "alice", ident.Username)
}

func TestCurrent_NoCookie(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := m.Current(req)
	assert.False(t, ok)
}

func TestCurrent_TamperedToken(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	cookie := issueCookie(t, m, &models.User{ID: 1, Username: "alice"})
	cookie.Value += "x"

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, ok := m.Current(req)
	assert.False(t, ok)
}

func TestCurrent_WrongSecret(t *testing.T) {
	cookie := issueCookie(t, NewManager("one-secret", time.Hour), &models.User{ID: 1, Username: "alice"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, ok := NewManager("other-secret", time.Hour).Current(req)
	assert.False(t, ok)
}

func TestCurrent_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)
	cookie := issueCookie(t, m, &models.User{ID: 1, Username: "alice"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookie)

	_, ok := m.Current(req)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	rec := httptest.NewRecorder()
	m.Clear(rec)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
