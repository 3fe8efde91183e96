// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package bot

import (
	"context"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/mattermost/first-timers-bot/pkg/twitter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Sentinel errors the CLI maps to exit codes
var (
	ErrNoLabelsFetched = errors.New("no issues could be fetched from any label")
	ErrCredentials     = errors.New("twitter credentials are not usable")
	ErrSavingDatabase  = errors.New("the issue database could not be updated")
)

// Bot sequences one full run: fetch per label, dedup, enrich, tweet,
// persist
type Bot struct {
	impl    botImplementation
	options *Options
}

// New returns a bot with the default options
func New() *Bot {
	return NewWithOptions(DefaultOptions())
}

func NewWithOptions(opts *Options) *Bot {
	return &Bot{
		impl:    &defaultBotImplementation{},
		options: opts,
	}
}

type Options struct {
	Labels     []string
	WindowDays int
	DBPath     string
	CredsPath  string
	Token      string // GitHub token, optional
	MaxHistory int
	DryRun     bool // Format and record outcomes without transmitting
	OnlySave   bool // Skip tweeting entirely, only populate the database
}

// Options returns the bot's option set
func (b *Bot) Options() *Options {
	return b.options
}

// RunSummary is what one invocation reports back
type RunSummary struct {
	TotalInDB   int
	Fresh       int
	LabelsOK    int
	LabelsTotal int
	Tweeted     int
	Failed      int
}

type botImplementation interface {
	loadHistory(b *Bot) ([]*issues.Issue, error)
	fetchLabel(ctx context.Context, b *Bot, label string) ([]*issues.Issue, error)
	enrich(ctx context.Context, b *Bot, list []*issues.Issue) []*issues.Issue
	loadCredentials(b *Bot) (*twitter.Credentials, error)
	publish(ctx context.Context, b *Bot, creds *twitter.Credentials, list []*issues.Issue, dryRun bool) []twitter.TweetResult
	saveHistory(b *Bot, list []*issues.Issue) error
}

// Run executes one bot invocation. Per-label fetch failures are logged and
// skipped; only a run where every label fails is an error. The database is
// updated even when tweeting partially or fully failed, but never when the
// run aborts on a precondition (unusable credentials), so a failed startup
// leaves the database untouched.
func (b *Bot) Run(ctx context.Context) (*RunSummary, error) {
	oldIssues, err := b.impl.loadHistory(b)
	if err != nil {
		return nil, errors.Wrap(err, "loading issue history")
	}
	logrus.Infof("Loaded %d existing issues from the database", len(oldIssues))

	summary := &RunSummary{LabelsTotal: len(b.options.Labels)}

	allNew := []*issues.Issue{}
	for _, label := range b.options.Labels {
		found, err := b.impl.fetchLabel(ctx, b, label)
		if err != nil {
			logrus.Errorf("Error fetching issues for label %q: %v", label, err)
			continue
		}
		allNew = append(allNew, found...)
		summary.LabelsOK++
	}
	if summary.LabelsOK == 0 {
		return nil, ErrNoLabelsFetched
	}

	unique := issues.DedupBatch(allNew)
	fresh := issues.Fresh(oldIssues, unique)
	summary.Fresh = len(fresh)
	logrus.Infof("Found %d unique new issues, %d not seen before", len(unique), len(fresh))

	if len(fresh) > 0 && !b.options.OnlySave {
		fresh = b.impl.enrich(ctx, b, fresh)

		creds, err := b.impl.loadCredentials(b)
		if err != nil {
			return nil, errors.Wrapf(ErrCredentials, "loading credentials: %v", err)
		}

		results := b.impl.publish(ctx, b, creds, fresh, b.options.DryRun)
		for _, res := range results {
			if res.Err == nil {
				summary.Tweeted++
			} else {
				summary.Failed++
			}
		}
	}

	allIssues := append(append([]*issues.Issue{}, fresh...), oldIssues...)
	if err := b.impl.saveHistory(b, allIssues); err != nil {
		return summary, errors.Wrapf(ErrSavingDatabase, "%v", err)
	}
	if len(allIssues) > b.options.MaxHistory {
		summary.TotalInDB = b.options.MaxHistory
	} else {
		summary.TotalInDB = len(allIssues)
	}
	return summary, nil
}
