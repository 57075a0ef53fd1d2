package provider

import (
	"encoding/json"
	"errors"
	"strings"
)

type twitterAdapter struct{}

// NewTwitter returns the X/Twitter provider adapter.
func NewTwitter() Adapter {
	return twitterAdapter{}
}

func (twitterAdapter) ID() string           { return "twitter" }
func (twitterAdapter) AuthorizeURL() string { return "https://twitter.com/i/oauth2/authorize" }
func (twitterAdapter) TokenURL() string     { return "https://api.twitter.com/2/oauth2/token" }

func (twitterAdapter) UserInfoURL() string {
	return "https://api.twitter.com/2/users/me?user.fields=id,username,name,description,public_metrics,profile_image_url"
}

func (twitterAdapter) Scopes() []string {
	return []string{"tweet.read", "users.read", "follows.read"}
}

type twUser struct {
	ID              string `json:"id"`
	Username        string `json:"username"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	ProfileImageURL string `json:"profile_image_url"`
}

func (twitterAdapter) Normalize(raw []byte) (Profile, error) {
	// The v2 API wraps the user object in a "data" envelope.
	var envelope struct {
		Data *twUser `json:"data"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return Profile{}, errors.Join(ErrMalformedProfile, err)
	}

	u := envelope.Data
	if u == nil {
		u = &twUser{}
		if err := json.Unmarshal(raw, u); err != nil {
			return Profile{}, errors.Join(ErrMalformedProfile, err)
		}
	}
	if u.ID == "" || u.Username == "" {
		return Profile{}, ErrMalformedProfile
	}

	return Profile{
		ExternalUserID: u.ID,
		Username:       u.Username,
		DisplayName:    u.Name,
		// The API returns a thumbnail; swap the size suffix for a usable resolution.
		AvatarURL: strings.Replace(u.ProfileImageURL, "_normal", "_400x400", 1),
		Bio:       u.Description,
		// Twitter OAuth 2.0 does not expose email.
	}, nil
}
