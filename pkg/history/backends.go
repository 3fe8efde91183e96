// Copyright (c) 2021-present Mattermost, Inc. All Rights Reserved.
// See License.txt for license information.

package history

import "strings"

// BackupSuffix is appended to the database path to name the safety copy
// taken before every overwrite
const BackupSuffix = ".backup"

// Backend abstracts where the issue database lives. The filesystem backend
// is the default; an s3:// path switches to the bucket backend.
type Backend interface {
	URLPrefix() string
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	Backup(path string) error
	PathExists(path string) (bool, error)
}

// ForPath returns the backend responsible for a database path
func ForPath(path string) Backend {
	if strings.HasPrefix(path, URLPrefixS3) {
		return NewS3Backend()
	}
	return NewFilesystemBackend()
}
