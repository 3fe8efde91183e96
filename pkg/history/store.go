// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package history

import (
	"encoding/json"

	"github.com/mattermost/first-timers-bot/pkg/issues"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Store persists the bounded history of seen issues as an indented JSON
// array, newest update first
type Store struct {
	backend Backend
	options *Options
}

type Options struct {
	Path      string // Database location (plain path, file:// or s3:// URL)
	MaxIssues int    // Retention cap applied on every save
}

// NewStore returns a store for path with the default retention cap
func NewStore(path string) *Store {
	return NewStoreWithOptions(&Options{Path: path, MaxIssues: issues.DefaultMaxHistory})
}

func NewStoreWithOptions(opts *Options) *Store {
	if opts.MaxIssues == 0 {
		opts.MaxIssues = issues.DefaultMaxHistory
	}
	return &Store{
		backend: ForPath(opts.Path),
		options: opts,
	}
}

// Options returns the store's option set
func (store *Store) Options() *Options {
	return store.options
}

// Exists checks if the database has been created
func (store *Store) Exists() (bool, error) {
	return store.backend.PathExists(store.options.Path)
}

// Load reads the issue history. A database that does not exist yet is an
// empty history. A database that cannot be decoded is treated as empty too,
// with a warning: the next save rebuilds it, and the backup still holds the
// last good copy.
func (store *Store) Load() ([]*issues.Issue, error) {
	exists, err := store.Exists()
	if err != nil {
		return nil, errors.Wrap(err, "checking for the issue database")
	}
	if !exists {
		return []*issues.Issue{}, nil
	}

	data, err := store.backend.Read(store.options.Path)
	if err != nil {
		return nil, errors.Wrap(err, "loading issue database")
	}

	list := []*issues.Issue{}
	if err := json.Unmarshal(data, &list); err != nil {
		logrus.Warnf("Database at %s is not a valid issue list, treating as empty: %v", store.options.Path, err)
		return []*issues.Issue{}, nil
	}
	return list, nil
}

// Save persists the history, trimmed to the retention cap and ordered by
// last update descending. The previous database version is copied to its
// .backup sibling before anything is overwritten, so an interrupted run
// leaves either the old database or the fully written new one.
func (store *Store) Save(list []*issues.Issue) error {
	limited := issues.LimitIssues(list, store.options.MaxIssues)

	data, err := json.MarshalIndent(limited, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding issue database")
	}

	if err := store.backend.Backup(store.options.Path); err != nil {
		return errors.Wrap(err, "backing up issue database")
	}
	if err := store.backend.Write(store.options.Path, data); err != nil {
		return errors.Wrap(err, "writing issue database")
	}
	logrus.Infof("Database updated with %d issues", len(limited))
	return nil
}
