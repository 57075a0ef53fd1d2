// Package provider defines the OAuth provider adapters used by the social
// login flow. Each supported provider (X/Twitter, GitHub, Discord, LinkedIn)
// is a separate Adapter implementation owning its endpoint table, scope list
// and profile normalization quirks. Adapters are pure: they never perform
// network I/O, they only describe endpoints and map raw payloads to the
// canonical Profile shape.
//
// Adding a provider means adding a new Adapter implementation and registering
// it; shared code never branches on a provider id string.
//
// # Usage
//
//	reg := provider.NewRegistry(
//	    provider.NewGitHub(),
//	    provider.NewDiscord(),
//	)
//
//	adapter, err := reg.Get("github")
//	if err != nil {
//	    // unknown provider: configuration error, not a runtime fault
//	}
//
//	profile, err := adapter.Normalize(rawJSON)
//
// Providers that expose supplementary data (currently GitHub repositories)
// additionally implement SupplementaryAdapter; callers discover the
// capability with a type assertion.
package provider
