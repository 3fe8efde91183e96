// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package bot

import (
	"context"

	"github.com/mattermost/first-timers-bot/pkg/github"
	"github.com/mattermost/first-timers-bot/pkg/history"
	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/mattermost/first-timers-bot/pkg/twitter"
)

type defaultBotImplementation struct {
	gh    *github.GitHub
	store *history.Store
}

func (di *defaultBotImplementation) github(b *Bot) *github.GitHub {
	if di.gh == nil {
		di.gh = github.NewWithOptions(&github.Options{
			Token:      b.options.Token,
			WindowDays: b.options.WindowDays,
		})
	}
	return di.gh
}

func (di *defaultBotImplementation) historyStore(b *Bot) *history.Store {
	if di.store == nil {
		di.store = history.NewStoreWithOptions(&history.Options{
			Path:      b.options.DBPath,
			MaxIssues: b.options.MaxHistory,
		})
	}
	return di.store
}

func (di *defaultBotImplementation) loadHistory(b *Bot) ([]*issues.Issue, error) {
	return di.historyStore(b).Load()
}

func (di *defaultBotImplementation) fetchLabel(
	ctx context.Context, b *Bot, label string,
) ([]*issues.Issue, error) {
	return di.github(b).FirstTimerIssues(ctx, label)
}

func (di *defaultBotImplementation) enrich(
	ctx context.Context, b *Bot, list []*issues.Issue,
) []*issues.Issue {
	return di.github(b).AddRepoLanguages(ctx, list)
}

func (di *defaultBotImplementation) loadCredentials(b *Bot) (*twitter.Credentials, error) {
	return twitter.LoadCredentials(b.options.CredsPath)
}

func (di *defaultBotImplementation) publish(
	ctx context.Context, b *Bot, creds *twitter.Credentials, list []*issues.Issue, dryRun bool,
) []twitter.TweetResult {
	return twitter.New(creds).PublishIssues(ctx, list, dryRun)
}

func (di *defaultBotImplementation) saveHistory(b *Bot, list []*issues.Issue) error {
	return di.historyStore(b).Save(list)
}
