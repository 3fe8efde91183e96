// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package github

import (
	"context"
	"fmt"
	"time"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/sirupsen/logrus"
)

const githubTknVar = "GITHUB_TOKEN"

type GitHub struct {
	impl    githubImplementation
	options *Options
}

// New returns a new GitHub client
func New() *GitHub {
	return NewWithOptions(&defaultOptions)
}

func NewWithOptions(opts *Options) *GitHub {
	if opts.PerPage == 0 {
		opts.PerPage = defaultOptions.PerPage
	}
	if opts.WindowDays == 0 {
		opts.WindowDays = defaultOptions.WindowDays
	}
	if opts.RateLimitCooldown == 0 {
		opts.RateLimitCooldown = defaultOptions.RateLimitCooldown
	}
	gh := &GitHub{
		impl:    &defaultGithubImplementation{},
		options: opts,
	}
	return gh
}

type Options struct {
	Token             string        // GitHub API token, optional
	PerPage           int           // Search page size
	WindowDays        int           // Recency window applied to search results
	RateLimitCooldown time.Duration // Pause after hitting the API rate limit
}

var defaultOptions = Options{
	PerPage:           30,
	WindowDays:        issues.DefaultWindowDays,
	RateLimitCooldown: 60 * time.Second,
}

// Options returns the client's option set
func (gh *GitHub) Options() *Options {
	return gh.options
}

type githubImplementation interface {
	searchIssues(ctx context.Context, query string, opts *Options) ([]*issues.Issue, error)
	listLanguages(ctx context.Context, opts *Options, owner, repo string) (map[string]int, int, error)
	sleep(d time.Duration)
}

// FirstTimerIssues runs a single-page search for open issues carrying label
// and returns the ones created inside the recency window, most recently
// updated first.
func (gh *GitHub) FirstTimerIssues(ctx context.Context, label string) ([]*issues.Issue, error) {
	query := fmt.Sprintf("label:%q state:open", label)
	found, err := gh.impl.searchIssues(ctx, query, gh.options)
	if err != nil {
		return nil, err
	}

	fresh := []*issues.Issue{}
	for _, issue := range found {
		if issues.CreatedWithinDays(issue.CreatedAt, gh.options.WindowDays) {
			fresh = append(fresh, issue)
		}
	}
	logrus.Infof("Found %d fresh issues for label %q", len(fresh), label)
	return fresh, nil
}

// AddRepoLanguages attaches the top repository languages to each issue. No
// failure here stops a run: a missing repository or a broken language query
// leaves that issue with an empty language list, and hitting the API rate
// limit pauses for the cooldown and hands back whatever was enriched so far,
// leaving the rest of the batch untouched.
func (gh *GitHub) AddRepoLanguages(ctx context.Context, list []*issues.Issue) []*issues.Issue {
	for _, issue := range list {
		owner, repo, err := splitRepositoryURL(issue.RepositoryURL)
		if err != nil {
			logrus.Errorf("Could not get languages for %s: %v", issue.RepositoryURL, err)
			issue.SetLanguages(map[string]int{})
			continue
		}

		byteCounts, status, err := gh.impl.listLanguages(ctx, gh.options, owner, repo)
		switch {
		case status == 403 || status == 429:
			logrus.Warn("Rate limit reached getting languages")
			gh.impl.sleep(gh.options.RateLimitCooldown)
			return list
		case status == 404:
			logrus.Warnf("Repository not found: %s/%s", owner, repo)
			issue.SetLanguages(map[string]int{})
		case err != nil:
			logrus.Errorf("Could not get languages for %s/%s: %v", owner, repo, err)
			issue.SetLanguages(map[string]int{})
		default:
			issue.SetLanguages(byteCounts)
		}
	}
	return list
}
