package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"dept_form_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSetsSessionCookie(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t)

	w := env.do(t, "POST", "/api/auth/login", `{"email":"admin@example.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == util.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)
	assert.Equal(t, "/", session.Path)
	assert.NotEmpty(t, session.Value)

	claims, err := util.ParseJWT(session.Value, env.cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := setupEnv(t)
	env.seedAdmin(t)

	w := env.do(t, "POST", "/api/auth/login", `{"email":"admin@example.com","password":"wrong-password"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())

	// 不存在的用户返回同样的响应
	w = env.do(t, "POST", "/api/auth/login", `{"email":"nobody@example.com","password":"secret123"}`, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Invalid credentials"}`, w.Body.String())
}

func TestLoginRejectsMalformedBody(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, "POST", "/api/auth/login", `{"email":"not-an-email"}`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRouteRequiresSession(t *testing.T) {
	env := setupEnv(t)

	w := env.do(t, "GET", "/api/dashboard", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())

	w = env.do(t, "GET", "/api/dashboard", "", &http.Cookie{Name: util.SessionCookie, Value: "tampered"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeReturnsProfile(t *testing.T) {
	env := setupEnv(t)
	cookie := env.sessionCookie(t)

	w := env.do(t, "GET", "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin@example.com", body["email"])
	assert.NotContains(t, w.Body.String(), "password", "digest must never leave the server")
}

func TestLogoutClearsCookie(t *testing.T) {
	env := setupEnv(t)
	cookie := env.sessionCookie(t)

	w := env.do(t, "POST", "/api/auth/logout", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	for _, c := range w.Result().Cookies() {
		if c.Name == util.SessionCookie {
			assert.Empty(t, c.Value)
			assert.Negative(t, c.MaxAge)
		}
	}
}
