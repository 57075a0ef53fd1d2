package provider

import (
	"encoding/json"
	"errors"
	"fmt"
)

type discordAdapter struct{}

// NewDiscord returns the Discord provider adapter.
func NewDiscord() Adapter {
	return discordAdapter{}
}

func (discordAdapter) ID() string           { return "discord" }
func (discordAdapter) AuthorizeURL() string { return "https://discord.com/api/oauth2/authorize" }
func (discordAdapter) TokenURL() string     { return "https://discord.com/api/oauth2/token" }
func (discordAdapter) UserInfoURL() string  { return "https://discord.com/api/users/@me" }
func (discordAdapter) Scopes() []string     { return []string{"identify", "email", "guilds"} }

type dcUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
	Email      string `json:"email"`
}

func (discordAdapter) Normalize(raw []byte) (Profile, error) {
	var u dcUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return Profile{}, errors.Join(ErrMalformedProfile, err)
	}
	if u.ID == "" || u.Username == "" {
		return Profile{}, ErrMalformedProfile
	}

	// Discord introduced display names later; older accounts only have the handle.
	displayName := u.GlobalName
	if displayName == "" {
		displayName = u.Username
	}

	var avatarURL string
	if u.Avatar != "" {
		avatarURL = fmt.Sprintf("https://cdn.discordapp.com/avatars/%s/%s.png", u.ID, u.Avatar)
	}

	return Profile{
		ExternalUserID: u.ID,
		Username:       u.Username,
		DisplayName:    displayName,
		AvatarURL:      avatarURL,
		Email:          u.Email,
	}, nil
}
