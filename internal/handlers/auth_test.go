package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const registerBody = `{"fullName":"Alice Smith","username":"alice","email":"alice@example.com","password":"correct-horse"}`

func registerUser(t *testing.T, h *AuthHandler, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	c, rec := newTestContext(http.MethodPost, "/auth/register", body)
	return rec, h.Register(c)
}

func TestRegisterAndLogin(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo())

	rec, err := registerUser(t, h, registerBody)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["token"])
	assert.NotContains(t, rec.Body.String(), "correct-horse")

	c, rec2 := newTestContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"correct-horse"}`)
	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo())

	_, err := registerUser(t, h, registerBody)
	require.NoError(t, err)

	_, err = registerUser(t, h, `{"fullName":"Other","username":"other","email":"alice@example.com","password":"some-password"}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo())

	_, err := registerUser(t, h, registerBody)
	require.NoError(t, err)

	_, err = registerUser(t, h, `{"fullName":"Other","username":"alice","email":"other@example.com","password":"some-password"}`)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusConflict, httpErr.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo())

	_, err := registerUser(t, h, registerBody)
	require.NoError(t, err)

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong-password"}`)
	err = h.Login(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo())

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"nobody@example.com","password":"whatever1"}`)
	err := h.Login(c)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
