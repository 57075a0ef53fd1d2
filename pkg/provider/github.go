package provider

import (
	"encoding/json"
	"errors"
	"strconv"
)

type githubAdapter struct{}

// NewGitHub returns the GitHub provider adapter.
func NewGitHub() Adapter {
	return githubAdapter{}
}

func (githubAdapter) ID() string           { return "github" }
func (githubAdapter) AuthorizeURL() string { return "https://github.com/login/oauth/authorize" }
func (githubAdapter) TokenURL() string     { return "https://github.com/login/oauth/access_token" }
func (githubAdapter) UserInfoURL() string  { return "https://api.github.com/user" }
func (githubAdapter) Scopes() []string     { return []string{"read:user", "user:email"} }

func (githubAdapter) ExtraDataURL() string {
	return "https://api.github.com/user/repos?sort=updated&per_page=10"
}

type ghUser struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Bio       string `json:"bio"`
	Email     string `json:"email"`
}

func (githubAdapter) Normalize(raw []byte) (Profile, error) {
	var u ghUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return Profile{}, errors.Join(ErrMalformedProfile, err)
	}
	if u.ID == 0 || u.Login == "" {
		return Profile{}, ErrMalformedProfile
	}

	// GitHub's display name is optional; fall back to the login handle.
	displayName := u.Name
	if displayName == "" {
		displayName = u.Login
	}

	return Profile{
		ExternalUserID: strconv.FormatInt(u.ID, 10),
		Username:       u.Login,
		DisplayName:    displayName,
		AvatarURL:      u.AvatarURL,
		Bio:            u.Bio,
		Email:          u.Email,
	}, nil
}

type ghRepo struct {
	Language    string `json:"language"`
	Description string `json:"description"`
}

func (githubAdapter) NormalizeExtra(raw []byte) []Repo {
	var repos []ghRepo
	if err := json.Unmarshal(raw, &repos); err != nil {
		return nil
	}

	out := make([]Repo, 0, len(repos))
	for _, r := range repos {
		out = append(out, Repo{Language: r.Language, Description: r.Description})
	}
	return out
}
