package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arfind/arfind_admin/logger"
	"github.com/arfind/arfind_admin/models"
	"github.com/arfind/arfind_admin/utils"
)

const testCookie = "arfind_session"

func newGatedEcho(store utils.SessionStore) *echo.Echo {
	e := echo.New()
	e.Use(LoadSession(store, testCookie, logger.Nop()))

	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/", ok)
	e.GET("/dashboard", ok, RequireLogin(), RequireAdmin())
	e.GET("/dashboard2", ok, RequireLogin(), RequireEmployee())
	e.GET("/planes", ok, RequireLogin())
	return e
}

func doGet(e *echo.Echo, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: sessionID})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRequireLogin_RedirectsWithoutSession(t *testing.T) {
	e := newGatedEcho(utils.NewMemorySessionStore(time.Hour))

	for _, path := range []string{"/dashboard", "/dashboard2", "/planes"} {
		rec := doGet(e, path, "")
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation), path)

		rec = doGet(e, path, "unknown-session")
		assert.Equal(t, http.StatusFound, rec.Code, path)
	}
}

func TestRequireLogin_SessionWithoutTokenIsRejected(t *testing.T) {
	store := utils.NewMemorySessionStore(time.Hour)
	require.NoError(t, store.Save(context.Background(), &models.Session{ID: "s1", EmployeeName: "Ana"}))

	rec := doGet(newGatedEcho(store), "/planes", "s1")
	assert.Equal(t, http.StatusFound, rec.Code)
}

// brokenSessionStore fails every lookup, as an unreachable Redis would.
type brokenSessionStore struct{}

func (brokenSessionStore) Save(ctx context.Context, s *models.Session) error { return errBackend }
func (brokenSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	return nil, errBackend
}
func (brokenSessionStore) Delete(ctx context.Context, id string) error { return errBackend }

var errBackend = errors.New("connection refused")

func TestLoadSession_StoreErrorLeavesRequestAnonymous(t *testing.T) {
	e := newGatedEcho(brokenSessionStore{})

	rec := doGet(e, "/", "s1")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doGet(e, "/planes", "s1")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
}

func TestRoleGates(t *testing.T) {
	store := utils.NewMemorySessionStore(time.Hour)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, &models.Session{ID: "admin", Token: "t", IsAdmin: true}))
	require.NoError(t, store.Save(ctx, &models.Session{ID: "emp", Token: "t"}))
	e := newGatedEcho(store)

	assert.Equal(t, http.StatusOK, doGet(e, "/dashboard", "admin").Code)
	assert.Equal(t, http.StatusOK, doGet(e, "/planes", "emp").Code)

	rec := doGet(e, "/dashboard", "emp")
	assert.Equal(t, "/dashboard2", rec.Header().Get(echo.HeaderLocation))

	rec = doGet(e, "/dashboard2", "admin")
	assert.Equal(t, "/dashboard", rec.Header().Get(echo.HeaderLocation))
}

func TestSessionCookie(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	SessionCookie{Name: testCookie, TTL: time.Hour}.WriteCookie(c, "abc")
	header := rec.Header().Get("Set-Cookie")
	assert.Contains(t, header, "arfind_session=abc")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "Max-Age=3600")
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter()
	e := echo.New()
	e.Use(rl.RateLimit())
	e.GET("/planes", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	var limited int
	for i := 0; i < 40; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/planes", nil))
		if rec.Code == http.StatusTooManyRequests {
			limited++
		}
	}
	assert.Greater(t, limited, 0)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rl.Cleanup(time.Now().Add(time.Hour))
	assert.Empty(t, rl.ips)
}

func TestSecurityHeaders(t *testing.T) {
	e := echo.New()
	e.Use(SecurityHeadersWithConfig(SecurityConfig{AllowInlineJS: true}))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	csp := rec.Header().Get("Content-Security-Policy")
	assert.True(t, strings.Contains(csp, "script-src 'self' 'unsafe-inline'"))
	assert.Contains(t, csp, "img-src 'self' data: https:")
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"))
}
