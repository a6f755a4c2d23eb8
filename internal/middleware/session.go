package middleware

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookie   = "session"
	sessionContext  = "session"
	sessionLifetime = 24 * time.Hour
)

type SessionData struct {
	UserID    string    `json:"user_id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionMiddleware loads the session cookie into the context and slides its
// expiry forward on every successful response.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionData := getSessionFromCookie(c)
		if sessionData == nil {
			c.Next()
			return
		}

		c.Set(sessionContext, sessionData)
		c.Writer = &slidingSessionWriter{
			ResponseWriter: c.Writer,
			refresh: func() {
				// the handler may have signed the user out
				if current := GetSession(c); current != nil {
					_ = SetSession(c, current.UserID, current.Login, current.Email)
				}
			},
		}

		c.Next()
	}
}

// slidingSessionWriter reissues the session cookie just before the response
// headers are flushed, unless the response is an error.
type slidingSessionWriter struct {
	gin.ResponseWriter
	refresh func()
	applied bool
}

func (w *slidingSessionWriter) apply() {
	if w.applied || w.ResponseWriter.Written() {
		return
	}
	w.applied = true
	if w.ResponseWriter.Status() < http.StatusBadRequest {
		w.refresh()
	}
}

func (w *slidingSessionWriter) WriteHeaderNow() {
	w.apply()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *slidingSessionWriter) Write(data []byte) (int, error) {
	w.apply()
	return w.ResponseWriter.Write(data)
}

func (w *slidingSessionWriter) WriteString(s string) (int, error) {
	w.apply()
	return w.ResponseWriter.WriteString(s)
}

// getSessionFromCookie extracts and validates session data from cookie
func getSessionFromCookie(c *gin.Context) *SessionData {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil {
		return nil
	}

	// Split cookie value (signature.data)
	parts := strings.Split(cookie, ".")
	if len(parts) != 2 {
		return nil
	}

	signature, data := parts[0], parts[1]

	if !verifySignature(data, signature) {
		return nil
	}

	decodedData, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		return nil
	}

	var sessionData SessionData
	if err := json.Unmarshal(decodedData, &sessionData); err != nil {
		return nil
	}

	if sessionData.UserID == "" || time.Now().After(sessionData.ExpiresAt) {
		return nil
	}

	return &sessionData
}

// SetSession creates or renews the session cookie
func SetSession(c *gin.Context, userID, login, email string) error {
	sessionData := &SessionData{
		UserID:    userID,
		Login:     login,
		Email:     email,
		ExpiresAt: time.Now().Add(sessionLifetime),
	}

	data, err := json.Marshal(sessionData)
	if err != nil {
		return err
	}

	encodedData := base64.URLEncoding.EncodeToString(data)
	signature := createSignature(encodedData)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, signature+"."+encodedData, int(sessionLifetime.Seconds()), "/", "", config.AppConfig.Session.SecureCookies, true)
	c.Set(sessionContext, sessionData)

	return nil
}

// ClearSession removes the session cookie
func ClearSession(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", config.AppConfig.Session.SecureCookies, true)
	c.Set(sessionContext, (*SessionData)(nil))
}

// createSignature creates HMAC signature for data
func createSignature(data string) string {
	h := hmac.New(sha256.New, []byte(config.AppConfig.Session.Secret))
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}

// verifySignature verifies HMAC signature
func verifySignature(data, signature string) bool {
	expectedSignature := createSignature(data)
	return hmac.Equal([]byte(signature), []byte(expectedSignature))
}

// GetSession retrieves session data from context
func GetSession(c *gin.Context) *SessionData {
	session, exists := c.Get(sessionContext)
	if !exists {
		return nil
	}

	if sessionData, ok := session.(*SessionData); ok {
		return sessionData
	}

	return nil
}

// CurrentUserID returns the signed-in user's ID, or "" for visitors
func CurrentUserID(c *gin.Context) string {
	if session := GetSession(c); session != nil {
		return session.UserID
	}
	return ""
}
