// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattermost/first-timers-bot/pkg/bot"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Exit codes for operational failures
const (
	exitMissingDB   = 2
	exitNoLabels    = 3
	exitPersistence = 4
	exitCredentials = 5
)

type runFlags struct {
	onlySave   bool
	dbPath     string
	create     bool
	credsPath  string
	token      string
	debug      bool
	labels     []string
	configPath string
	logFile    string
}

// NewRootCmd constructs the bot's root cobra command
func NewRootCmd() *cobra.Command {
	flags := &runFlags{}

	cmd := &cobra.Command{
		Use:           "first-timers-bot",
		Short:         "first-timers-bot - tweet fresh beginner-friendly GitHub issues",
		Long: `first-timers-bot searches GitHub for recently created issues carrying
beginner-friendly labels, filters out everything it has tweeted before and
posts the rest, one tweet per issue. The issue database on disk is what
keeps reruns from tweeting the same issue twice.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBot(flags)
		},
	}

	cmd.PersistentFlags().BoolVar(&flags.onlySave, "only-save", false, "do not post any tweets, just populate the database")
	cmd.PersistentFlags().StringVar(&flags.dbPath, "db-path", bot.DefaultDBPath, "issue database path (local path or s3:// URL)")
	cmd.PersistentFlags().BoolVar(&flags.create, "create", false, "create the database if it doesn't exist")
	cmd.PersistentFlags().StringVar(&flags.credsPath, "creds-path", bot.DefaultCredsPath, "file containing the Twitter API credentials")
	cmd.PersistentFlags().StringVar(&flags.token, "github-token", "", "GitHub token (defaults to the GITHUB_TOKEN environment variable)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "run in debug mode (does not actually tweet)")
	cmd.PersistentFlags().StringSliceVar(&flags.labels, "labels", bot.DefaultLabels, "issue labels to search for")
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "optional YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "also append logs to this file")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the bot version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "first-timers-bot %s\n", version())
		},
	})

	return cmd
}

func version() string {
	if v := os.Getenv("FIRST_TIMERS_BOT_VERSION"); v != "" {
		return v
	}
	return "0.0.0-dev"
}

// setupLogs points logrus at stderr, optionally teeing into a log file
func setupLogs(logFile string) error {
	if logFile == "" {
		return nil
	}
	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, os.FileMode(0o644))
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
	return nil
}

func buildOptions(flags *runFlags) (*bot.Options, error) {
	opts := bot.DefaultOptions()

	if flags.configPath != "" {
		conf, err := bot.LoadConfig(flags.configPath)
		if err != nil {
			return nil, err
		}
		if err := conf.Validate(); err != nil {
			return nil, errors.Wrap(err, "validating configuration")
		}
		conf.Apply(opts)
	}

	if flags.dbPath != bot.DefaultDBPath {
		opts.DBPath = flags.dbPath
	}
	if flags.credsPath != bot.DefaultCredsPath {
		opts.CredsPath = flags.credsPath
	}
	if len(flags.labels) > 0 && !sameLabels(flags.labels, bot.DefaultLabels) {
		opts.Labels = flags.labels
	}
	opts.Token = flags.token
	opts.DryRun = flags.debug
	opts.OnlySave = flags.onlySave
	return opts, nil
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
