package expertise

import (
	"sort"
	"strings"

	"github.com/profiledeck/socialauth/pkg/provider"
)

// keywords is the fixed vocabulary matched against bios and repository
// descriptions. All entries are lowercase.
var keywords = []string{
	"javascript", "typescript", "python", "rust", "go", "java", "c++",
	"react", "vue", "angular", "node", "django", "flask", "fastapi",
	"design", "ui/ux", "figma", "marketing", "seo", "content",
	"crypto", "web3", "blockchain", "defi", "nft",
	"ai", "ml", "machine learning", "llm", "gpt",
	"devops", "docker", "kubernetes", "aws", "gcp",
}

// Extract scans the bio and any repository metadata for known keywords and
// repository languages. The result is sorted for stable comparisons.
func Extract(bio string, repos []provider.Repo) []string {
	tags := make(map[string]struct{})

	scan(strings.ToLower(bio), tags)

	for _, repo := range repos {
		if repo.Language != "" {
			tags[strings.ToLower(repo.Language)] = struct{}{}
		}
		scan(strings.ToLower(repo.Description), tags)
	}

	if len(tags) == 0 {
		return nil
	}

	out := make([]string, 0, len(tags))
	for tag := range tags {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func scan(text string, tags map[string]struct{}) {
	if text == "" {
		return
	}
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			tags[kw] = struct{}{}
		}
	}
}
