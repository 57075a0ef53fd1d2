package provider_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/profiledeck/socialauth/pkg/provider"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := provider.NewRegistry(provider.NewGitHub(), provider.NewDiscord())

	t.Run("returns registered adapter", func(t *testing.T) {
		adapter, err := reg.Get("github")
		require.NoError(t, err)
		assert.Equal(t, "github", adapter.ID())
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := reg.Get("gitlab")
		assert.ErrorIs(t, err, provider.ErrUnknownProvider)
	})

	t.Run("ids preserve registration order", func(t *testing.T) {
		assert.Equal(t, []string{"github", "discord"}, reg.IDs())
	})
}

func TestGitHubNormalize(t *testing.T) {
	t.Parallel()

	adapter := provider.NewGitHub()

	t.Run("full profile", func(t *testing.T) {
		raw := []byte(`{"id":123456,"login":"testuser","name":"Test User","avatar_url":"https://avatars.githubusercontent.com/u/123456","bio":"Python developer","email":"test@example.com"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "123456", profile.ExternalUserID)
		assert.Equal(t, "testuser", profile.Username)
		assert.Equal(t, "Test User", profile.DisplayName)
		assert.Equal(t, "Python developer", profile.Bio)
		assert.Equal(t, "test@example.com", profile.Email)
	})

	t.Run("display name falls back to login", func(t *testing.T) {
		raw := []byte(`{"id":42,"login":"octocat"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "octocat", profile.DisplayName)
	})

	t.Run("missing id is malformed", func(t *testing.T) {
		_, err := adapter.Normalize([]byte(`{"login":"octocat"}`))
		assert.ErrorIs(t, err, provider.ErrMalformedProfile)
	})

	t.Run("invalid json is malformed", func(t *testing.T) {
		_, err := adapter.Normalize([]byte(`not json`))
		assert.ErrorIs(t, err, provider.ErrMalformedProfile)
	})

	t.Run("normalizes repos", func(t *testing.T) {
		supp, ok := adapter.(provider.SupplementaryAdapter)
		require.True(t, ok)

		repos := supp.NormalizeExtra([]byte(`[{"language":"Go","description":"a web3 thing"},{"language":null,"description":null}]`))
		require.Len(t, repos, 2)
		assert.Equal(t, "Go", repos[0].Language)
		assert.Equal(t, "a web3 thing", repos[0].Description)
		assert.Empty(t, repos[1].Language)
	})

	t.Run("malformed repos yield nil", func(t *testing.T) {
		supp := adapter.(provider.SupplementaryAdapter)
		assert.Nil(t, supp.NormalizeExtra([]byte(`{"not":"a list"}`)))
	})
}

func TestTwitterNormalize(t *testing.T) {
	t.Parallel()

	adapter := provider.NewTwitter()

	t.Run("unwraps data envelope and rewrites avatar size", func(t *testing.T) {
		raw := []byte(`{"data":{"id":"987","username":"birduser","name":"Bird User","description":"rust and go","profile_image_url":"https://pbs.twimg.com/profile_images/987/pic_normal.jpg"}}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "987", profile.ExternalUserID)
		assert.Equal(t, "birduser", profile.Username)
		assert.Equal(t, "https://pbs.twimg.com/profile_images/987/pic_400x400.jpg", profile.AvatarURL)
		assert.Empty(t, profile.Email)
	})

	t.Run("accepts bare user object", func(t *testing.T) {
		raw := []byte(`{"id":"987","username":"birduser","name":"Bird User"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "987", profile.ExternalUserID)
	})

	t.Run("missing id is malformed", func(t *testing.T) {
		_, err := adapter.Normalize([]byte(`{"data":{"username":"birduser"}}`))
		assert.ErrorIs(t, err, provider.ErrMalformedProfile)
	})
}

func TestDiscordNormalize(t *testing.T) {
	t.Parallel()

	adapter := provider.NewDiscord()

	t.Run("builds cdn avatar url", func(t *testing.T) {
		raw := []byte(`{"id":"111","username":"gamer","global_name":"Gamer Prime","avatar":"abcdef","email":"gamer@example.com"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "Gamer Prime", profile.DisplayName)
		assert.Equal(t, "https://cdn.discordapp.com/avatars/111/abcdef.png", profile.AvatarURL)
		assert.Equal(t, "gamer@example.com", profile.Email)
	})

	t.Run("display name falls back to username", func(t *testing.T) {
		raw := []byte(`{"id":"111","username":"gamer"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "gamer", profile.DisplayName)
		assert.Empty(t, profile.AvatarURL)
	})
}

func TestLinkedInNormalize(t *testing.T) {
	t.Parallel()

	adapter := provider.NewLinkedIn()

	t.Run("joins localized names", func(t *testing.T) {
		raw := []byte(`{"id":"li-1","vanityName":"jane-doe","localizedFirstName":"Jane","localizedLastName":"Doe"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "jane-doe", profile.Username)
		assert.Equal(t, "Jane Doe", profile.DisplayName)
	})

	t.Run("username falls back to id", func(t *testing.T) {
		raw := []byte(`{"id":"li-1","localizedFirstName":"Jane"}`)

		profile, err := adapter.Normalize(raw)
		require.NoError(t, err)
		assert.Equal(t, "li-1", profile.Username)
		assert.Equal(t, "Jane", profile.DisplayName)
	})
}
