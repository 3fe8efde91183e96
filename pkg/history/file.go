// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package history

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/release-utils/util"
)

const URLPrefixFilesystem = "file://"

type Filesystem struct{}

func NewFilesystemBackend() *Filesystem {
	return &Filesystem{}
}

func (fsb *Filesystem) URLPrefix() string {
	return URLPrefixFilesystem
}

func (fsb *Filesystem) localPath(path string) string {
	return strings.TrimPrefix(path, URLPrefixFilesystem)
}

func (fsb *Filesystem) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(fsb.localPath(path))
	if err != nil {
		return nil, errors.Wrap(err, "reading database file")
	}
	return data, nil
}

// Write stores the database, creating the parent directory when needed
func (fsb *Filesystem) Write(path string, data []byte) error {
	path = fsb.localPath(path)
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if !util.Exists(dir) {
			if err := os.MkdirAll(dir, os.FileMode(0o755)); err != nil {
				return errors.Wrap(err, "creating database directory")
			}
			logrus.Infof("Created directory: %s", dir)
		}
	}
	if err := os.WriteFile(path, data, os.FileMode(0o644)); err != nil {
		return errors.Wrap(err, "writing database file")
	}
	return nil
}

// Backup copies the current database to its .backup sibling. A missing
// database is not an error, there is simply nothing to protect yet.
func (fsb *Filesystem) Backup(path string) error {
	path = fsb.localPath(path)
	if !util.Exists(path) {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading database before backup")
	}
	backupPath := path + BackupSuffix
	if err := os.WriteFile(backupPath, data, os.FileMode(0o644)); err != nil {
		return errors.Wrap(err, "writing database backup")
	}
	logrus.Infof("Created backup: %s", backupPath)
	return nil
}

func (fsb *Filesystem) PathExists(path string) (bool, error) {
	return util.Exists(fsb.localPath(path)), nil
}
