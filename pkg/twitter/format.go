// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package twitter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/pkg/errors"
)

const (
	// MaxTweetLen is the hard tweet length cap, counted in runes
	MaxTweetLen = 280

	// shortURLLen is the length every URL ends up with after the
	// platform's link shortener rewrites it
	shortURLLen = 23

	// BaseHashtags always ride along, whatever the repository languages
	BaseHashtags = "#github #opensource"

	// maxLanguageTags caps how many language hashtags get appended
	maxLanguageTags = 2

	ellipsis = "…"
)

// ErrURLFormatChanged flags an issue URL that no longer matches the GitHub
// API URL scheme. This means the upstream contract moved, so it surfaces
// instead of degrading.
var ErrURLFormatChanged = errors.New("format of API URLs has changed")

var (
	issueURLRegex = regexp.MustCompile(`^https://api\.github\.com/repos/([^/]+)/([^/]+)/issues/(\d+)$`)
	nonAlnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// HumanizeURL converts an API issue endpoint into the page a human would
// open in a browser
func HumanizeURL(apiURL string) (string, error) {
	parts := issueURLRegex.FindStringSubmatch(apiURL)
	if parts == nil {
		return "", errors.Wrap(ErrURLFormatChanged, apiURL)
	}
	return fmt.Sprintf("https://github.com/%s/%s/issues/%s", parts[1], parts[2], parts[3]), nil
}

// FormatTweet renders an issue as "<title> <url> <hashtags>" under the
// tweet length cap. The title gets truncated against a budget that reserves
// the shortened URL width and the hashtag block. If the assembled text still
// runs over (the shortener estimate and the real URL differ), the language
// hashtags are dropped first and the title cut harder as a last resort.
func FormatTweet(issue *issues.Issue) (string, error) {
	humanURL, err := HumanizeURL(issue.URL)
	if err != nil {
		return "", err
	}

	langTags := []string{}
	for _, lang := range issue.TopLanguageNames(maxLanguageTags) {
		clean := nonAlnumRegex.ReplaceAllString(lang, "")
		if clean != "" {
			langTags = append(langTags, "#"+clean)
		}
	}
	allHashtags := BaseHashtags
	if len(langTags) > 0 {
		allHashtags += " " + strings.Join(langTags, " ")
	}

	available := MaxTweetLen - (shortURLLen + 1) - (runeLen(allHashtags) + 1)
	title := truncate(issue.Title, available)

	text := title + " " + humanURL + " " + allHashtags
	if runeLen(text) > MaxTweetLen {
		// Drop the language hashtags
		text = title + " " + humanURL + " " + BaseHashtags
		if runeLen(text) > MaxTweetLen {
			// Last resort: cut the title against the smaller hashtag block
			maxTitle := MaxTweetLen - (shortURLLen + 1) - (runeLen(BaseHashtags) + 1)
			title = hardCut(title, maxTitle)
			text = title + " " + humanURL + " " + BaseHashtags
		}
	}
	return text, nil
}

func runeLen(s string) int {
	return len([]rune(s))
}

// truncate cuts s to at most budget runes, marking the cut with an ellipsis
func truncate(s string, budget int) string {
	if runeLen(s) <= budget {
		return s
	}
	return hardCut(s, budget)
}

// hardCut always cuts to budget-1 runes and appends the ellipsis
func hardCut(s string, budget int) string {
	runes := []rune(s)
	if budget < 1 {
		return ellipsis
	}
	if len(runes) > budget-1 {
		runes = runes[:budget-1]
	}
	return string(runes) + ellipsis
}
