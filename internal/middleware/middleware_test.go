package middleware

import (
	jwtPkg "camonk/pkg/jwt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func ok(c *fiber.Ctx) error {
	return c.SendString("ok")
}

func TestRateLimiter(t *testing.T) {
	mw := NewWithRateLimit(newTestLogger(), rate.Limit(0), 1)
	app := fiber.New()
	app.Get("/limited", mw.NewRateLimiter, ok)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/limited", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"too many requests"}`, string(body))
}

func TestRequestID(t *testing.T) {
	mw := New(newTestLogger())
	app := fiber.New()
	app.Use(mw.NewRequestIDMiddleware())

	var seen string
	app.Get("/", func(c *fiber.Ctx) error {
		seen = mw.GetRequestID(c)
		return c.SendStatus(http.StatusNoContent)
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	assert.NotEqual(t, "unknown", seen)
	assert.Equal(t, seen, resp.Header.Get(RequestIDKey))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDKey, "caller-supplied")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "caller-supplied", seen)
	assert.Equal(t, "caller-supplied", resp.Header.Get(RequestIDKey))
}

func TestRequestIDReplacesUnusableCallerIDs(t *testing.T) {
	app := fiber.New()
	app.Use(NewRequestIDMiddleware())
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusNoContent)
	})

	for _, supplied := range []string{strings.Repeat("a", 200), "two words"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDKey, supplied)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)

		got := resp.Header.Get(RequestIDKey)
		assert.NotEqual(t, supplied, got)
		assert.Len(t, got, 26)
	}
}

func serviceTokenApp() *fiber.App {
	mw := New(newTestLogger())
	app := fiber.New()
	app.Post("/blogs", mw.NewServiceTokenMiddleware, ok)
	return app
}

func postWithToken(t *testing.T, app *fiber.App, token string) int {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/blogs", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestServiceTokenDisabledWithoutSecret(t *testing.T) {
	t.Setenv(jwtPkg.ServiceTokenSecret, "")
	assert.Equal(t, http.StatusOK, postWithToken(t, serviceTokenApp(), ""))
}

func TestServiceToken(t *testing.T) {
	t.Setenv(jwtPkg.ServiceTokenSecret, "middleware-secret")
	app := serviceTokenApp()

	assert.Equal(t, http.StatusUnauthorized, postWithToken(t, app, ""))
	assert.Equal(t, http.StatusUnauthorized, postWithToken(t, app, "garbage"))

	unscoped, _, err := jwtPkg.Sign(map[string]interface{}{"sub": jwtPkg.ServiceSubject}, time.Minute, jwtPkg.ServiceTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, postWithToken(t, app, unscoped))

	scoped, err := jwtPkg.NewServiceTokenSource(time.Minute)()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, postWithToken(t, app, scoped))
}

func TestSanitizeRequestBody(t *testing.T) {
	got := sanitizeRequestBody("/api/v1/blogs", `{"title":"GST","content":"long body","api_key":"x"}`)
	assert.Contains(t, got, `"title":"GST"`)
	assert.NotContains(t, got, "long body")
	assert.NotContains(t, got, `"x"`)

	assert.Equal(t, "[non-JSON body]", sanitizeRequestBody("/blogs", "title=GST"))
}
