// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package twitter

import (
	"context"
	"time"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/sirupsen/logrus"
)

type Twitter struct {
	impl    twitterImplementation
	options *Options
}

// New returns a new Twitter client
func New(creds *Credentials) *Twitter {
	return NewWithOptions(&Options{Credentials: creds, PostDelay: defaultOptions.PostDelay})
}

func NewWithOptions(opts *Options) *Twitter {
	tw := &Twitter{
		impl:    &defaultTwitterImplementation{},
		options: opts,
	}
	return tw
}

type Options struct {
	Credentials *Credentials
	PostDelay   time.Duration // Courtesy pause after each successful post
}

var defaultOptions = Options{
	PostDelay: 1 * time.Second,
}

type twitterImplementation interface {
	verifyCredentials(ctx context.Context, creds *Credentials) (username string, err error)
	postTweet(ctx context.Context, creds *Credentials, text string) (id string, err error)
	sleep(d time.Duration)
}

// TweetResult is the outcome of publishing one issue. Err is nil on
// success. Results are returned to the caller and never persisted.
type TweetResult struct {
	Err      error
	Text     string
	IssueURL string
}

// PublishIssues formats and posts one tweet per issue. The whole call backs
// out (empty result list) when credentials are incomplete or the identity
// check fails. After that, one issue failing to format or transmit only
// produces a failure result; the rest of the batch still goes out. In
// dry-run mode outcomes are recorded without transmitting anything.
func (tw *Twitter) PublishIssues(ctx context.Context, list []*issues.Issue, dryRun bool) []TweetResult {
	if len(list) == 0 {
		logrus.Info("No issues to tweet")
		return []TweetResult{}
	}

	if err := tw.options.Credentials.Validate(); err != nil {
		logrus.Errorf("Refusing to tweet: %v", err)
		return []TweetResult{}
	}

	username, err := tw.impl.verifyCredentials(ctx, tw.options.Credentials)
	if err != nil {
		logrus.Errorf("Twitter authentication failed: %v", err)
		return []TweetResult{}
	}
	logrus.Infof("Authenticated as: %s", username)

	results := []TweetResult{}
	for _, issue := range list {
		text, err := FormatTweet(issue)
		if err != nil {
			logrus.Errorf("Error formatting tweet for %q: %v", issue.Title, err)
			results = append(results, TweetResult{Err: err, Text: "", IssueURL: issue.URL})
			continue
		}

		if dryRun {
			logrus.Infof("[DRY RUN] Would tweet: %s", text)
			results = append(results, TweetResult{Text: text, IssueURL: issue.URL})
			continue
		}

		id, err := tw.impl.postTweet(ctx, tw.options.Credentials, text)
		if err != nil {
			logrus.Errorf("Error tweeting issue %q: %v", issue.Title, err)
			results = append(results, TweetResult{Err: err, Text: text, IssueURL: issue.URL})
			continue
		}
		logrus.Infof("Successfully tweeted issue %q (ID: %s)", issue.Title, id)
		tw.impl.sleep(tw.options.PostDelay)
		results = append(results, TweetResult{Text: text, IssueURL: issue.URL})
	}
	return results
}
