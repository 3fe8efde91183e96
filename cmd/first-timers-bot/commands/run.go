// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/mattermost/first-timers-bot/cmd/first-timers-bot/internal/clierr"
	"github.com/mattermost/first-timers-bot/pkg/bot"
	"github.com/mattermost/first-timers-bot/pkg/history"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func runBot(flags *runFlags) error {
	if err := setupLogs(flags.logFile); err != nil {
		return err
	}
	logrus.Info("Bot started")

	opts, err := buildOptions(flags)
	if err != nil {
		return err
	}

	store := history.NewStore(opts.DBPath)
	dbExists, err := store.Exists()
	if err != nil {
		return errors.Wrap(err, "checking for the issue database")
	}
	if !dbExists && !flags.create {
		return clierr.Wrap(exitMissingDB,
			fmt.Sprintf("database %q does not exist, pass --create to create it", opts.DBPath), nil)
	}
	if dbExists && flags.create {
		logrus.Warnf("Database %q already exists but --create was passed", opts.DBPath)
	}

	summary, err := bot.NewWithOptions(opts).Run(context.Background())
	if err != nil {
		switch {
		case errors.Is(err, bot.ErrNoLabelsFetched):
			return clierr.Wrap(exitNoLabels, "fetching issues", err)
		case errors.Is(err, bot.ErrCredentials):
			return clierr.Wrap(exitCredentials, "loading twitter credentials", err)
		case errors.Is(err, bot.ErrSavingDatabase):
			return clierr.Wrap(exitPersistence, "updating the database", err)
		}
		return err
	}

	printSummary(summary)
	logrus.Infof("Bot completed successfully. Fresh issues: %d", summary.Fresh)
	return nil
}

func printSummary(summary *bot.RunSummary) {
	fmt.Fprintln(os.Stdout, "Summary:")
	fmt.Fprintf(os.Stdout, "  Total issues in database: %d\n", summary.TotalInDB)
	fmt.Fprintf(os.Stdout, "  Fresh issues found:       %d\n", summary.Fresh)
	fmt.Fprintf(os.Stdout, "  Labels processed:         %d/%d\n", summary.LabelsOK, summary.LabelsTotal)
	if summary.Tweeted > 0 || summary.Failed > 0 {
		fmt.Fprintf(os.Stdout, "  Tweets sent:              %d (%d failed)\n", summary.Tweeted, summary.Failed)
	}
}
