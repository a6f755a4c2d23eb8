package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedCookie(t *testing.T, session SessionData) string {
	t.Helper()
	data, err := json.Marshal(session)
	require.NoError(t, err)
	encodedData := base64.URLEncoding.EncodeToString(data)
	return createSignature(encodedData) + "." + encodedData
}

func newSessionRouter() *gin.Engine {
	config.Load()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(SessionMiddleware())
	return router
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestSessionExtension(t *testing.T) {
	router := newSessionRouter()
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": CurrentUserID(c)})
	})

	sessionData := SessionData{
		UserID:    "test-user",
		Login:     "testuser",
		Email:     "test@example.com",
		ExpiresAt: time.Now().Add(1 * time.Hour),
	}
	cookieValue := signedCookie(t, sessionData)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: cookieValue})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test-user")

	cookie := findCookie(w.Result(), "session")
	require.NotNil(t, cookie, "session cookie should be reissued")
	assert.True(t, cookie.HttpOnly)

	// gin URL-encodes the cookie value
	sessionValue, err := url.QueryUnescape(cookie.Value)
	require.NoError(t, err)
	assert.NotEqual(t, cookieValue, sessionValue)

	parts := strings.Split(sessionValue, ".")
	require.Len(t, parts, 2)
	assert.True(t, verifySignature(parts[1], parts[0]))

	decodedData, err := base64.URLEncoding.DecodeString(parts[1])
	require.NoError(t, err)

	var extended SessionData
	require.NoError(t, json.Unmarshal(decodedData, &extended))
	assert.Equal(t, sessionData.UserID, extended.UserID)
	assert.Equal(t, sessionData.Login, extended.Login)
	assert.Equal(t, sessionData.Email, extended.Email)
	assert.True(t, extended.ExpiresAt.After(time.Now().Add(23*time.Hour)), "expiry should be extended")

	// the reissued cookie is accepted as sent
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), "test-user")
}

func TestSessionExtensionOnError(t *testing.T) {
	router := newSessionRouter()
	router.GET("/error", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "test error"})
	})

	req := httptest.NewRequest(http.MethodGet, "/error", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: signedCookie(t, SessionData{
		UserID:    "test-user",
		ExpiresAt: time.Now().Add(time.Hour),
	})})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Nil(t, findCookie(w.Result(), "session"), "error responses keep the old cookie")
}

func TestSessionExtensionWithoutSession(t *testing.T) {
	router := newSessionRouter()
	router.GET("/test", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "success"})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Set-Cookie"))
}

func TestSessionRejectsTamperedAndExpiredCookies(t *testing.T) {
	router := newSessionRouter()
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, "%s", CurrentUserID(c))
	})

	valid := signedCookie(t, SessionData{UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)})
	parts := strings.Split(valid, ".")
	forged, _ := json.Marshal(SessionData{UserID: "admin", ExpiresAt: time.Now().Add(time.Hour)})

	testCases := []struct {
		name   string
		cookie string
	}{
		{"garbage", "not-a-session"},
		{"forged payload", parts[0] + "." + base64.URLEncoding.EncodeToString(forged)},
		{"expired", signedCookie(t, SessionData{UserID: "u1", ExpiresAt: time.Now().Add(-time.Minute)})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			req.AddCookie(&http.Cookie{Name: "session", Value: tc.cookie})
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, "", w.Body.String())
		})
	}
}

func TestClearSessionSkipsRefresh(t *testing.T) {
	router := newSessionRouter()
	router.GET("/logout", func(c *gin.Context) {
		ClearSession(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: signedCookie(t, SessionData{UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)})})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	cookie := findCookie(w.Result(), "session")
	require.NotNil(t, cookie)
	assert.Equal(t, "", cookie.Value)
	assert.True(t, cookie.MaxAge < 0)
}

func TestAuthRequired(t *testing.T) {
	router := newSessionRouter()
	router.GET("/private", AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "welcome %s", CurrentUserID(c))
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/private", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: signedCookie(t, SessionData{UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)})})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "welcome u1", w.Body.String())
}
