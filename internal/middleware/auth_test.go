package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamahmadmhd/cinemora/internal/middleware"
)

const secret = "auth-test-secret"

func newAuthApp() *fiber.App {
	app := fiber.New()
	app.Use(middleware.Auth(secret))
	app.Get("/whoami", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"user_id": middleware.UserID(c)})
	})
	return app
}

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func whoami(t *testing.T, app *fiber.App, authorization string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body["user_id"]
}

func TestAuthResolvesSubjectFromValidToken(t *testing.T) {
	app := newAuthApp()
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	assert.Equal(t, "user-42", whoami(t, app, "Bearer "+token))
}

func TestAuthMissingHeaderProceedsUnauthenticated(t *testing.T) {
	app := newAuthApp()
	assert.Empty(t, whoami(t, app, ""))
}

func TestAuthBadSignatureProceedsUnauthenticated(t *testing.T) {
	app := newAuthApp()
	token := sign(t, jwt.SigningMethodHS256, []byte("wrong-secret"), jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	assert.Empty(t, whoami(t, app, "Bearer "+token))
}

func TestAuthExpiredTokenProceedsUnauthenticated(t *testing.T) {
	app := newAuthApp()
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"sub": "user-42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	assert.Empty(t, whoami(t, app, "Bearer "+token))
}

func TestAuthTokenWithoutSubjectProceedsUnauthenticated(t *testing.T) {
	app := newAuthApp()
	token := sign(t, jwt.SigningMethodHS256, []byte(secret), jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	assert.Empty(t, whoami(t, app, "Bearer "+token))
}

func TestAuthMalformedHeaderProceedsUnauthenticated(t *testing.T) {
	app := newAuthApp()
	assert.Empty(t, whoami(t, app, "Token abc123"))
	assert.Empty(t, whoami(t, app, "Bearer not.a.jwt"))
}
