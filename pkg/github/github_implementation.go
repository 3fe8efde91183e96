// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package github

import (
	"context"
	"regexp"
	"time"

	gogithub "github.com/google/go-github/v39/github"
	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/pkg/errors"
)

type defaultGithubImplementation struct {
	githubAPIUser
}

func (di *defaultGithubImplementation) searchIssues(
	ctx context.Context, query string, opts *Options,
) ([]*issues.Issue, error) {
	result, _, err := di.GitHubClient(opts).Search.Issues(ctx, query, &gogithub.SearchOptions{
		Sort:  "updated",
		Order: "desc",
		ListOptions: gogithub.ListOptions{
			Page:    1,
			PerPage: opts.PerPage,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "searching issues in the GitHub API")
	}

	found := make([]*issues.Issue, 0, len(result.Issues))
	for i := range result.Issues {
		found = append(found, issues.NewIssueFromAPI(result.Issues[i]))
	}
	return found, nil
}

func (di *defaultGithubImplementation) listLanguages(
	ctx context.Context, opts *Options, owner, repo string,
) (map[string]int, int, error) {
	langs, resp, err := di.GitHubClient(opts).Repositories.ListLanguages(ctx, owner, repo)
	if err != nil {
		return nil, statusCodeOf(err, resp), errors.Wrapf(err, "listing languages of %s/%s", owner, repo)
	}
	return langs, resp.StatusCode, nil
}

func (di *defaultGithubImplementation) sleep(d time.Duration) {
	time.Sleep(d)
}

// statusCodeOf digs the HTTP status out of a go-github error. Rate limit
// errors are normalized to 403 even when go-github reports them as typed
// errors without a response.
func statusCodeOf(err error, resp *gogithub.Response) int {
	var rateErr *gogithub.RateLimitError
	if errors.As(err, &rateErr) {
		return 403
	}
	var abuseErr *gogithub.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return 403
	}
	var respErr *gogithub.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil {
		return respErr.Response.StatusCode
	}
	if resp != nil {
		return resp.StatusCode
	}
	return 0
}

var repoURLRegex = regexp.MustCompile(`^https://api\.github\.com/repos/([^/]+)/([^/]+)$`)

// splitRepositoryURL extracts owner and repo from an API repository URL
func splitRepositoryURL(repositoryURL string) (owner, repo string, err error) {
	parts := repoURLRegex.FindStringSubmatch(repositoryURL)
	if parts == nil {
		return "", "", errors.Errorf("unexpected repository URL format: %s", repositoryURL)
	}
	return parts[1], parts[2], nil
}
