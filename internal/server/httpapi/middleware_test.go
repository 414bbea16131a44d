package httpapi

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitriev/authcore/internal/server/auth"
	"github.com/ndmitriev/authcore/internal/server/users"
)

func TestMe_BearerToken(t *testing.T) {
	stored := &users.User{ID: "u-1", Name: "Ana", Role: "user"}
	s := newTestServer(t, &fakeUserService{getUserOut: stored})

	token, err := auth.GenerateToken("u-1", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	w := doRequest(t, s, http.MethodGet, "/api/v1/users/me", "", h)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u-1", resp.User.ID)
	assert.Equal(t, "Ana", resp.User.Name)
}

func TestMe_CookieToken(t *testing.T) {
	stored := &users.User{ID: "u-2", Name: "Bob", Role: "user"}
	s := newTestServer(t, &fakeUserService{getUserOut: stored})

	token, err := auth.GenerateToken("u-2", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Cookie", sessionCookieName+"="+token)
	w := doRequest(t, s, http.MethodGet, "/api/v1/users/me", "", h)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.NotNil(t, resp.User)
	assert.Equal(t, "u-2", resp.User.ID)
}

func TestMe_NoToken(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	w := doRequest(t, s, http.MethodGet, "/api/v1/users/me", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Authorization required", resp.Message)
	assert.Equal(t, codeUnauthorized, resp.Code)
}

func TestMe_InvalidToken(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	h := http.Header{}
	h.Set("Authorization", "Bearer not.a.jwt")
	w := doRequest(t, s, http.MethodGet, "/api/v1/users/me", "", h)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "Invalid token", resp.Message)
}

func TestMe_ExpiredToken(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	token, err := auth.GenerateToken("u-1", []byte(testSecret), -time.Minute)
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	w := doRequest(t, s, http.MethodGet, "/api/v1/users/me", "", h)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMe_WrongSecret(t *testing.T) {
	s := newTestServer(t, &fakeUserService{})

	token, err := auth.GenerateToken("u-1", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	w := doRequest(t, s, http.MethodGet, "/api/v1/users/me", "", h)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
