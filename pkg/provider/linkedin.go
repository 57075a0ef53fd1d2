package provider

import (
	"encoding/json"
	"errors"
	"strings"
)

type linkedinAdapter struct{}

// NewLinkedIn returns the LinkedIn provider adapter.
func NewLinkedIn() Adapter {
	return linkedinAdapter{}
}

func (linkedinAdapter) ID() string { return "linkedin" }

func (linkedinAdapter) AuthorizeURL() string {
	return "https://www.linkedin.com/oauth/v2/authorization"
}

func (linkedinAdapter) TokenURL() string {
	return "https://www.linkedin.com/oauth/v2/accessToken"
}

func (linkedinAdapter) UserInfoURL() string { return "https://api.linkedin.com/v2/me" }
func (linkedinAdapter) Scopes() []string    { return []string{"r_liteprofile", "r_emailaddress"} }

type liUser struct {
	ID                 string `json:"id"`
	VanityName         string `json:"vanityName"`
	LocalizedFirstName string `json:"localizedFirstName"`
	LocalizedLastName  string `json:"localizedLastName"`
}

func (linkedinAdapter) Normalize(raw []byte) (Profile, error) {
	var u liUser
	if err := json.Unmarshal(raw, &u); err != nil {
		return Profile{}, errors.Join(ErrMalformedProfile, err)
	}
	if u.ID == "" {
		return Profile{}, ErrMalformedProfile
	}

	username := u.VanityName
	if username == "" {
		username = u.ID
	}

	return Profile{
		ExternalUserID: u.ID,
		Username:       username,
		DisplayName:    strings.TrimSpace(u.LocalizedFirstName + " " + u.LocalizedLastName),
		// Avatar and email require separate LinkedIn API calls not part of this flow.
	}, nil
}
