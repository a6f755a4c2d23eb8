package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/alimgiray/projectboard/pkg/config"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// Identity is what the board learns about a user from GitHub
type Identity struct {
	Login   string
	Name    string
	Email   string
	Twitter string
}

type GitHubService struct {
	oauthConfig *oauth2.Config
}

func NewGitHubService() *GitHubService {
	oauthConfig := &oauth2.Config{
		ClientID:     config.AppConfig.GitHub.ClientID,
		ClientSecret: config.AppConfig.GitHub.ClientSecret,
		RedirectURL:  config.AppConfig.GitHub.CallbackURL,
		Scopes: []string{
			"read:user",  // Profile name and twitter handle
			"user:email", // Primary email, even when private
		},
		Endpoint: githuboauth.Endpoint,
	}

	return &GitHubService{
		oauthConfig: oauthConfig,
	}
}

// NewState returns a random OAuth state value
func NewState() (string, error) {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// GetAuthURL returns the GitHub OAuth authorization URL
func (s *GitHubService) GetAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state)
}

// ExchangeCodeForToken exchanges authorization code for access token
func (s *GitHubService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}
	return token, nil
}

// GetIdentity loads the authenticated GitHub user. When the profile email is
// private the primary verified address is used instead.
func (s *GitHubService) GetIdentity(ctx context.Context, token *oauth2.Token) (*Identity, error) {
	client := github.NewClient(s.oauthConfig.Client(ctx, token))

	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}

	identity := &Identity{
		Login:   user.GetLogin(),
		Name:    user.GetName(),
		Email:   user.GetEmail(),
		Twitter: user.GetTwitterUsername(),
	}

	if identity.Email == "" {
		emails, _, err := client.Users.ListEmails(ctx, &github.ListOptions{PerPage: 100})
		if err != nil {
			return nil, fmt.Errorf("failed to list user emails: %w", err)
		}
		identity.Email = primaryEmail(emails)
	}

	if identity.Email == "" {
		return nil, errors.New("GitHub account has no verified email address")
	}

	return identity, nil
}

func primaryEmail(emails []*github.UserEmail) string {
	for _, email := range emails {
		if email.GetPrimary() && email.GetVerified() {
			return email.GetEmail()
		}
	}
	for _, email := range emails {
		if email.GetVerified() {
			return email.GetEmail()
		}
	}
	return ""
}
