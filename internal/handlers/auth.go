package handlers

import (
	"net/http"
	"net/url"

	"github.com/alimgiray/projectboard/internal/middleware"
	"github.com/alimgiray/projectboard/internal/services"
	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/alimgiray/projectboard/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const oauthStateCookie = "oauth_state"

type AuthHandler struct {
	profileService *services.ProfileService
	githubService  *services.GitHubService
}

func NewAuthHandler(profileService *services.ProfileService, githubService *services.GitHubService) *AuthHandler {
	return &AuthHandler{
		profileService: profileService,
		githubService:  githubService,
	}
}

// Me returns the signed-in user's profile
func (h *AuthHandler) Me(c *gin.Context) {
	profile, err := h.profileService.GetProfile(middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// Logout handles user logout
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearSession(c)
	c.Redirect(http.StatusFound, config.AppConfig.Server.AppURL)
}

// GitHubLogin initiates GitHub OAuth flow
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	state, err := services.NewState()
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/auth", "", config.AppConfig.Session.SecureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.githubService.GetAuthURL(state))
}

// GitHubCallback handles GitHub OAuth callback
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	expectedState, err := c.Cookie(oauthStateCookie)
	c.SetCookie(oauthStateCookie, "", -1, "/auth", "", config.AppConfig.Session.SecureCookies, true)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		h.failLogin(c, "invalid_state")
		return
	}

	code := c.Query("code")
	if code == "" {
		h.failLogin(c, "no_code")
		return
	}

	ctx := c.Request.Context()
	token, err := h.githubService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.WithError(err).Warn("GitHub token exchange failed")
		h.failLogin(c, "token_exchange_failed")
		return
	}

	identity, err := h.githubService.GetIdentity(ctx, token)
	if err != nil {
		logger.WithError(err).Warn("GitHub identity lookup failed")
		h.failLogin(c, "user_info_failed")
		return
	}

	profile, err := h.profileService.UpsertFromIdentity(identity)
	if err != nil {
		logger.WithError(err).Error("Profile upsert failed")
		h.failLogin(c, "profile_failed")
		return
	}

	if err := middleware.SetSession(c, profile.ID, identity.Login, profile.Email); err != nil {
		h.failLogin(c, "session_creation_failed")
		return
	}

	logger.WithFields(logrus.Fields{
		"user_id": profile.ID,
		"login":   identity.Login,
	}).Info("User signed in")

	c.Redirect(http.StatusFound, config.AppConfig.Server.AppURL)
}

func (h *AuthHandler) failLogin(c *gin.Context, reason string) {
	c.Redirect(http.StatusFound, config.AppConfig.Server.AppURL+"?login_error="+url.QueryEscape(reason))
}
