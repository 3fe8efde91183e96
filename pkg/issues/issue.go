// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package issues

import (
	"sort"

	gogithub "github.com/google/go-github/v39/github"
)

const (
	// TimeFormat is the fixed timestamp layout used by the GitHub API
	TimeFormat = "2006-01-02T15:04:05Z"

	// MaxLanguages is how many repository languages get attached to an issue
	MaxLanguages = 3
)

// Issue is a single tracked issue as it flows through the bot. The API URL
// is the issue's identity: it is assigned at fetch time and never rewritten.
// The JSON tags mirror the GitHub field names so the history database stays
// readable by (and from) earlier versions of the bot.
type Issue struct {
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	CreatedAt     string     `json:"created_at"`
	UpdatedAt     string     `json:"updated_at"`
	RepositoryURL string     `json:"repository_url"`
	Languages     []Language `json:"languages,omitempty"`
}

// Language is one repository language with its byte count. Languages are
// kept as an ordered slice, largest first, never more than MaxLanguages.
type Language struct {
	Name  string `json:"name"`
	Bytes int    `json:"bytes"`
}

// NewIssueFromAPI builds an Issue from a go-github search result
func NewIssueFromAPI(ghissue *gogithub.Issue) *Issue {
	return &Issue{
		URL:           ghissue.GetURL(),
		Title:         ghissue.GetTitle(),
		CreatedAt:     ghissue.GetCreatedAt().UTC().Format(TimeFormat),
		UpdatedAt:     ghissue.GetUpdatedAt().UTC().Format(TimeFormat),
		RepositoryURL: ghissue.GetRepositoryURL(),
	}
}

// SetLanguages attaches the top languages to the issue, sorted by byte count
// descending and capped at MaxLanguages. Passing an empty map records an
// empty (but present) language list, which is how enrichment failures are
// remembered as "checked, nothing known".
func (i *Issue) SetLanguages(byteCounts map[string]int) {
	langs := make([]Language, 0, len(byteCounts))
	for name, size := range byteCounts {
		langs = append(langs, Language{Name: name, Bytes: size})
	}
	sort.SliceStable(langs, func(a, b int) bool {
		if langs[a].Bytes == langs[b].Bytes {
			return langs[a].Name < langs[b].Name
		}
		return langs[a].Bytes > langs[b].Bytes
	})
	if len(langs) > MaxLanguages {
		langs = langs[:MaxLanguages]
	}
	i.Languages = langs
}

// TopLanguageNames returns up to max language names in stored order
func (i *Issue) TopLanguageNames(max int) []string {
	names := []string{}
	for _, lang := range i.Languages {
		if len(names) == max {
			break
		}
		names = append(names, lang.Name)
	}
	return names
}
